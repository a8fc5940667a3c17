// Package ingest loads the photo dataset CSV into the catalog and seeds the
// default admin account.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"photo-catalog-server/internal/config"
	"photo-catalog-server/internal/logging"
	"photo-catalog-server/internal/model"
	"photo-catalog-server/internal/modules/photo/repo"
)

// AdminSeeder 在不存在管理员时创建默认管理员
type AdminSeeder interface {
	EnsureAdmin(email, username, password string) (bool, error)
}

// Report 导入结果统计
type Report struct {
	Inserted int
	Skipped  int
}

type Ingester struct {
	cfg    config.IngestConfig
	admins AdminSeeder
	photos repo.PhotoStore
	logger logging.Logger
}

func NewIngester(cfg config.Config, admins AdminSeeder, photos repo.PhotoStore, logger logging.Logger) *Ingester {
	ingestCfg := cfg.Ingest
	if ingestCfg.BatchSize <= 0 {
		ingestCfg.BatchSize = 100
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Ingester{
		cfg:    ingestCfg,
		admins: admins,
		photos: photos,
		logger: logger,
	}
}

// Run 创建默认管理员并导入 csvPath 指定的文件；csvPath 为空时使用配置中的路径。
func (i *Ingester) Run(ctx context.Context, csvPath string) (Report, error) {
	if err := i.SeedAdmin(ctx); err != nil {
		return Report{}, err
	}

	if csvPath == "" {
		csvPath = i.cfg.CSVPath
	}
	f, err := os.Open(csvPath)
	if err != nil {
		i.logger.Error(ctx, "open csv failed", "path", csvPath, "error", err)
		return Report{}, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	i.logger.Info(ctx, "starting photo ingestion", "path", csvPath, "batch_size", i.cfg.BatchSize)
	report, err := i.Import(ctx, f)
	if err != nil {
		i.logger.Error(ctx, "ingestion failed", "inserted", report.Inserted, "skipped", report.Skipped, "error", err)
		return report, err
	}
	i.logger.Info(ctx, "ingestion completed", "inserted", report.Inserted, "skipped", report.Skipped)
	return report, nil
}

func (i *Ingester) SeedAdmin(ctx context.Context) error {
	created, err := i.admins.EnsureAdmin(i.cfg.AdminEmail, i.cfg.AdminUsername, i.cfg.AdminPassword)
	if err != nil {
		i.logger.Error(ctx, "seed admin failed", "username", i.cfg.AdminUsername, "error", err)
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		i.logger.Info(ctx, "created admin user", "username", i.cfg.AdminUsername)
	} else {
		i.logger.Info(ctx, "admin user already exists")
	}
	return nil
}

// Import 按批写入 r 中的图片。已存在的 id（数据库中或文件中更早出现）被跳过；
// 每批一个事务，失败的批次整体回滚并中止导入，之前已提交的批次保留。
func (i *Ingester) Import(ctx context.Context, r io.Reader) (Report, error) {
	var report Report

	reader, err := NewReader(r)
	if err != nil {
		return report, err
	}

	seen := make(map[uint]struct{})
	batch := make([]model.Photo, 0, i.cfg.BatchSize)

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		photo, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, err
		}

		if _, dup := seen[photo.ID]; dup {
			i.logger.Debug(ctx, "duplicate id in file, skipping", "photo_id", photo.ID)
			report.Skipped++
			continue
		}
		seen[photo.ID] = struct{}{}
		batch = append(batch, photo)

		if len(batch) >= i.cfg.BatchSize {
			if err := i.flush(ctx, batch, &report); err != nil {
				return report, err
			}
			batch = batch[:0]
		}
	}

	if err := i.flush(ctx, batch, &report); err != nil {
		return report, err
	}

	if err := i.photos.ResyncIDSequence(); err != nil {
		return report, fmt.Errorf("resync photo id sequence: %w", err)
	}
	return report, nil
}

func (i *Ingester) flush(ctx context.Context, batch []model.Photo, report *Report) error {
	if len(batch) == 0 {
		return nil
	}

	ids := make([]uint, len(batch))
	for n, p := range batch {
		ids[n] = p.ID
	}
	existing, err := i.photos.ExistingIDs(ids)
	if err != nil {
		return fmt.Errorf("query existing photos: %w", err)
	}

	fresh := make([]model.Photo, 0, len(batch))
	for _, p := range batch {
		if _, ok := existing[p.ID]; ok {
			report.Skipped++
			continue
		}
		fresh = append(fresh, p)
	}

	if err := i.photos.CreateBatch(fresh); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	report.Inserted += len(fresh)
	i.logger.Info(ctx, "ingested batch", "batch", len(fresh), "total", report.Inserted)
	return nil
}
