/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent = "swisspair/0.1.0 (+https://github.com/mikeb26/swisspair)"

	// WebCacheBucketEnv names the S3 bucket backing the web page cache;
	// caching is skipped when unset.
	WebCacheBucketEnv = "SWISSPAIR_WEBCACHE_BUCKET"
)
