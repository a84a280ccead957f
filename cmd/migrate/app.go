package main

import (
	"fmt"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/database"
)

// openDatabase loads the environment config and connects to its database.
func openDatabase() (*config.Config, *database.DB, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("설정 로드 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	return cfg, db, nil
}
