//go:build integration

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "gocloud.dev/blob/s3blob"

	"github.com/JamesonCodes/s3-image-importer/internal/ledger"
	"github.com/JamesonCodes/s3-image-importer/internal/testutils"
)

func TestCLIIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Serve a real PNG, a JPEG under a lying name, and an HTML error page
	t.Log("Starting HTTP test server...")
	server := testutils.StartImageServer(t, []testutils.ImageFile{
		{Name: "a.png", Data: testutils.TinyPNG(), ContentType: "image/png"},
		{Name: "photo.jpeg", Data: testutils.TinyJPEG(), ContentType: "image/jpeg"},
		{Name: "error.png", Data: testutils.HTMLBody(), ContentType: "text/html"},
	})
	defer server.Close()

	// Start Minio
	t.Log("Starting Minio container...")
	minio := testutils.StartMinioContainer(t, ctx, "importer-test-bucket")
	defer func() {
		if err := minio.Close(ctx); err != nil {
			t.Logf("failed to terminate minio container: %v", err)
		}
	}()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "images.csv")
	ledgerPath := filepath.Join(dir, "processed_indices.log")
	failuresPath := filepath.Join(dir, "failed_urls.log")

	csv := fmt.Sprintf("URL\n%s/a.png\n%s/photo.jpeg\n%s/error.png\n%s/missing.png\n,\n",
		server.URL, server.URL, server.URL, server.URL)
	if err := os.WriteFile(csvPath, []byte(csv), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	importArgs := []string{
		"-csv", csvPath,
		"-bucket", minio.BucketURL,
		"-folder", "imported",
		"-workers", "4",
		"-ledger", ledgerPath,
		"-failures", failuresPath,
	}

	t.Run("import", func(t *testing.T) {
		exitCode := runImport(importArgs)
		if exitCode != ExitSuccess {
			t.Fatalf("import failed with exit code %d", exitCode)
		}

		bucket, err := minio.OpenBucket(ctx)
		if err != nil {
			t.Fatalf("open bucket: %v", err)
		}
		defer bucket.Close()

		got, err := bucket.ReadAll(ctx, "imported/0_a.png")
		if err != nil {
			t.Fatalf("read uploaded png: %v", err)
		}
		if !bytes.Equal(got, testutils.TinyPNG()) {
			t.Error("uploaded png bytes mismatch")
		}

		// Sniffed format wins over the URL's .jpeg suffix
		if exists, _ := bucket.Exists(ctx, "imported/1_photo.jpg"); !exists {
			t.Error("expected imported/1_photo.jpg")
		}

		// The HTML page and the 404 must not be uploaded
		if exists, _ := bucket.Exists(ctx, "imported/2_error.png"); exists {
			t.Error("html payload must not be uploaded")
		}

		done, err := ledger.Load(ledgerPath)
		if err != nil {
			t.Fatalf("load ledger: %v", err)
		}
		if len(done) != 2 || !done[0] || !done[1] {
			t.Fatalf("ledger = %v, want {0 1}", done)
		}
	})

	t.Run("rerun_resumes", func(t *testing.T) {
		exitCode := runImport(importArgs)
		if exitCode != ExitSuccess {
			t.Fatalf("re-run failed with exit code %d", exitCode)
		}

		// The two good rows stay recorded once; the bad rows stay out.
		done, err := ledger.Load(ledgerPath)
		if err != nil {
			t.Fatalf("load ledger: %v", err)
		}
		if len(done) != 2 {
			t.Fatalf("ledger after re-run = %v, want {0 1}", done)
		}
	})

	t.Run("status", func(t *testing.T) {
		exitCode := runStatus([]string{
			"-csv", csvPath,
			"-ledger", ledgerPath,
		})
		if exitCode != ExitSuccess {
			t.Fatalf("status failed with exit code %d", exitCode)
		}
	})
}
