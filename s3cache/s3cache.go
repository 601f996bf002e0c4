/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that stores
 * and retrieves data using Amazon S3. It is based on the original
 * github.com/sourcegraph/s3cache but updated to use the more modern
 * aws-sdk-go-v2 and golang standard library functions
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const pathPrefix = "swisspair-webcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the cache uses when interacting with S3. By
	// default this is initialized in Init() with the default Config, but
	// callers can optionally override this with their own s3 client.
	Client *s3.Client

	bucketName string

	// gzip indicates whether cache entries should be gzipped in Set and
	// gunzipped in Get. If true, cache entry keys carry a ".gz" suffix.
	gzip bool

	log *zap.Logger

	// The context to specify when initiating s3 requests
	ctx context.Context
}

// New returns a Cache persisting to the given S3 bucket, optionally
// compressing entries. Callers must invoke Init() before use. A nil logger
// disables logging.
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logIn *zap.Logger) *Cache {

	if logIn == nil {
		logIn = zap.NewNop()
	}

	return &Cache{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		log:        logIn,
	}
}

// Init loads the default AWS configuration (environment variables, shared
// config and credentials files) and verifies the bucket is accessible. To
// use different credentials, modify the returned Cache object's Config and
// Client fields.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	}

	resp, err := c.Client.GetObject(c.ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		// no such key just indicates a cache miss
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			c.log.Warn("s3cache: get failed", zap.String("key", *input.Key),
				zap.Error(err))
		}
		return nil, false
	}
	defer resp.Body.Close()

	rdr := resp.Body
	if c.gzip {
		rdr, err = gzip.NewReader(rdr)
		if err != nil {
			c.log.Warn("s3cache: failed to open compressed object",
				zap.String("key", *input.Key), zap.Error(err))
			return nil, false
		}
		defer rdr.Close()
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		c.log.Warn("s3cache: read failed", zap.String("key", *input.Key),
			zap.Error(err))
	}

	return data, err == nil
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
		Body:   bytes.NewReader(data),
	}

	if c.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.log.Warn("s3cache: gzip failed", zap.String("key", *input.Key),
				zap.Error(err))
			return
		}
		if err := gw.Close(); err != nil {
			c.log.Warn("s3cache: gzip close failed",
				zap.String("key", *input.Key), zap.Error(err))
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.log.Warn("s3cache: put failed", zap.String("key", *input.Key),
			zap.Error(err))
	}
}

func (c *Cache) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	}

	if _, err := c.Client.DeleteObject(c.ctx, input); err != nil {
		c.log.Warn("s3cache: delete failed", zap.String("key", *input.Key),
			zap.Error(err))
	}
}

func (c *Cache) objectKey(key string) string {
	h := sha256.Sum256([]byte(key))
	objKey := fmt.Sprintf("/%v/%v", pathPrefix, hex.EncodeToString(h[:]))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}
