package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/member"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/memberdata"
	"github.com/spf13/cobra"
)

var (
	pagesFile string
	online    bool
)

func init() {
	syncCmd.Flags().StringVarP(&pagesFile, "file", "f", "", "JSON file with one page object or an array of pages")
	syncCmd.Flags().BoolVar(&online, "online", true, "merge with the stored record of each member")
	_ = syncCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync member pages into the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pages, err := loadPages(pagesFile)
		if err != nil {
			return err
		}

		cfg, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("데이터베이스 종료 실패", "error", err)
			}
		}()

		repository := member.NewMemberDataRepository()
		memberService := member.NewMemberService(db.DB, repository)
		syncService := member.NewSyncService(cfg, db.DB, repository, memberdata.NewGenerator(memberService))

		var processed, skipped int
		for _, page := range pages {
			page.Online = online
			response, err := syncService.SyncPage(ctx, &page)
			if err != nil {
				return err
			}
			processed += response.Processed
			skipped += response.Skipped
			fmt.Fprintf(cmd.OutOrStdout(), "page %d: processed=%d skipped=%d\n",
				response.PageNumber, response.Processed, response.Skipped)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "total: pages=%d processed=%d skipped=%d\n", len(pages), processed, skipped)
		return nil
	},
}

// loadPages reads a single page object or an array of pages. Pages without a
// page number are numbered by their position, starting at 1.
func loadPages(path string) ([]member.SyncPageRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pages file: %w", err)
	}

	var pages []member.SyncPageRequest
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &pages); err != nil {
			return nil, fmt.Errorf("decode pages file %s: %w", path, err)
		}
	} else {
		var page member.SyncPageRequest
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("decode pages file %s: %w", path, err)
		}
		pages = append(pages, page)
	}

	for i := range pages {
		if pages[i].PageNumber == 0 {
			pages[i].PageNumber = i + 1
		}
	}
	return pages, nil
}
