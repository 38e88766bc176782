package database

import (
	"fmt"
	"os"
	"path/filepath"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultMotivations 日历与每日提示共用的激励短句
var DefaultMotivations = []string{
	"Acredite em você. Estude. Conquiste.",
	"O sucesso é a soma de pequenos esforços repetidos dia após dia.",
	"Não estude para passar, estude para aprender.",
	"A persistência realiza o impossível.",
	"Sua dedicação de hoje é o seu sucesso de amanhã.",
	"Quanto mais você estuda, mais perto você fica dos seus sonhos.",
	"A educação é a arma mais poderosa que você pode usar para mudar o mundo.",
	"Não tenha medo de falhar. Tenha medo de não tentar.",
	"O futuro pertence àqueles que acreditam na beleza de seus sonhos.",
	"Transforme o 'não consigo' em 'vou tentar até conseguir'.",
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case "sqlite", "":
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Driver))

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Log.Info("Database migration completed")
	return db, nil
}

// Migrate 建表并写入默认激励短句
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.StoreEntry{},
		&model.Motivation{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&model.Motivation{}).Count(&count)
	if count == 0 {
		for i, content := range DefaultMotivations {
			motivation := &model.Motivation{
				Content:         content,
				IsEnabled:       true,
				IsCurrentlyUsed: i == 0,
			}
			if err := db.Create(motivation).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
