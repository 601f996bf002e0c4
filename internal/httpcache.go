/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gregjones/httpcache"
	"go.uber.org/zap"

	"github.com/mikeb26/swisspair/s3cache"
)

// NewCachedHttpClient returns an http.Client that caches via an S3-backed
// httpcache when SWISSPAIR_WEBCACHE_BUCKET is set, and an in-memory cache
// otherwise. It enforces a client-side TTL by rewriting origin cache
// headers.
func NewCachedHttpClient(ctx context.Context, maxAge time.Duration,
	log *zap.Logger) *http.Client {

	if log == nil {
		log = zap.NewNop()
	}

	var cache httpcache.Cache
	if bucket := os.Getenv(WebCacheBucketEnv); bucket != "" {
		s3c := s3cache.New(ctx, bucket, true, log)
		if err := s3c.Init(); err != nil {
			log.Warn("httpcache: S3 cache init failed; using memory cache",
				zap.String("bucket", bucket), zap.Error(err))
			cache = httpcache.NewMemoryCache()
		} else {
			cache = s3c
		}
	} else {
		cache = httpcache.NewMemoryCache()
	}

	hc := httpcache.NewTransport(cache)
	// we have to inject our own header overrides here in order to override
	// server responses that might indicate caching shouldn't be done
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Response: func(resp *http.Response) error {
			// Strip any cache-busting headers from origin
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			// Enforce the provided TTL
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don't stomp on the caller's original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
