package inits

import (
	"context"
	"github.com/Edward-Brock/x-dimension/app/server/config"
	"github.com/Edward-Brock/x-dimension/app/server/storage"
)

// Storage 对象存储，未配置时返回 nil
func Storage(ctx context.Context, cfg *config.Config) (*storage.Vendor, error) {
	sc := storage.Config{
		Region:          cfg.Storage.Region,
		Endpoint:        cfg.Storage.Endpoint,
		Bucket:          cfg.Storage.Bucket,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
	}
	if !sc.Enabled() {
		return nil, nil
	}

	return storage.New(ctx, sc)
}
