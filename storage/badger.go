package storage

import (
	"path/filepath"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/VictoriaMetrics/fastcache"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

type BadgerStore struct {
	custom     *config.Custom
	valuesDB   *badger.DB
	datasetsDB *badger.DB
	cache      *fastcache.Cache
	closing    chan struct{}
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	if custom == nil {
		custom = config.Default()
	}
	closing := make(chan struct{})
	valuesDB, err := openDB(filepath.Join(dir, "values"), true, custom, closing)
	if err != nil {
		return nil, err
	}
	datasetsDB, err := openDB(filepath.Join(dir, "datasets"), false, custom, closing)
	if err != nil {
		valuesDB.Close()
		return nil, err
	}
	return &BadgerStore{
		custom:     custom,
		valuesDB:   valuesDB,
		datasetsDB: datasetsDB,
		cache:      fastcache.New(custom.Storage.CacheSize * 1024),
		closing:    closing,
	}, nil
}

func (s *BadgerStore) Close() error {
	select {
	case <-s.closing:
		return nil
	default:
		close(s.closing)
	}
	s.cache.Reset()
	err := s.valuesDB.Close()
	if err != nil {
		return err
	}
	return s.datasetsDB.Close()
}

func openDB(dir string, sync bool, custom *config.Custom, closing <-chan struct{}) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithSyncWrites(sync)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBlockCacheSize(0)
	opts = opts.WithIndexCacheSize(0)
	opts = opts.WithMetricsEnabled(false)
	opts = opts.WithLoggingLevel(badger.WARNING)
	opts = opts.WithBaseLevelSize(16 << 20)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	if custom.Storage.ValueLogGC {
		go func() {
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-closing:
					return
				case <-ticker.C:
				}
				lsm, vlog := db.Size()
				logger.Verbosef("Badger %s LSM %d VLOG %d\n", dir, lsm, vlog)
				if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
					err := db.RunValueLogGC(0.5)
					logger.Verbosef("Badger %s RunValueLogGC %v\n", dir, err)
				}
			}
		}()
	}

	return db, nil
}
