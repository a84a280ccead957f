package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/memberdata"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/metrics"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SyncService feeds pages of raw member records through the member data pipeline
// and stores the results.
type SyncService struct {
	db                   *gorm.DB
	memberDataRepository *MemberDataRepository
	generator            *memberdata.Generator
	concurrency          int
}

func NewSyncService(cfg *config.Config, db *gorm.DB, memberDataRepository *MemberDataRepository, generator *memberdata.Generator) *SyncService {
	concurrency := cfg.Migration.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &SyncService{
		db:                   db,
		memberDataRepository: memberDataRepository,
		generator:            generator,
		concurrency:          concurrency,
	}
}

// SyncPage generates every member of request and upserts the results in one
// transaction. Records that are malformed or fail validation are skipped; any
// other error aborts the page and nothing of it is written.
func (s *SyncService) SyncPage(ctx context.Context, request *SyncPageRequest) (*SyncPageResponse, error) {
	ctx = logger.With(ctx, "pageNumber", request.PageNumber, "online", request.Online)
	log := logger.FromContext(ctx)
	start := time.Now()
	defer func() {
		metrics.SyncPageLatency.Observe(float64(time.Since(start).Milliseconds()))
	}()

	response := &SyncPageResponse{
		PageNumber:       request.PageNumber,
		SkippedMemberIDs: []string{},
	}
	records := make([]*model.MemberData, len(request.Members))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, raw := range request.Members {
		i, raw := i, raw
		g.Go(func() error {
			memberID, record, err := s.generateOne(gctx, raw, request.PageNumber, request.Online)

			switch {
			case err == nil:
				records[i] = record
				return nil
			case errors.Is(err, memberdata.ErrInvalidMemberData):
				mu.Lock()
				defer mu.Unlock()
				response.Skipped++
				if memberID != "" {
					response.SkippedMemberIDs = append(response.SkippedMemberIDs, memberID)
				}
				metrics.MemberRecordsSkippedTotal.Inc()
				log.Warn("회원 데이터 건너뜀", "index", i, "memberId", memberID, "error", err)
				return nil
			default:
				metrics.MemberRecordsFailedTotal.Inc()
				return fmt.Errorf("member index=%d memberId=%s: %w", i, memberID, err)
			}
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("페이지 동기화 실패", "error", err)
		return nil, fmt.Errorf("sync page %d: %w", request.PageNumber, err)
	}

	// records keep request order so upserts are deterministic
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		for _, record := range records {
			if record == nil {
				continue
			}
			if err := s.memberDataRepository.Upsert(ctx, tx, record); err != nil {
				return fmt.Errorf("회원 데이터 저장 실패 memberId=%s: %w", record.MemberID, err)
			}
			response.Processed++
		}
		return nil
	})
	if err != nil {
		metrics.MemberRecordsFailedTotal.Inc()
		log.Error("페이지 저장 실패 - 롤백", "error", err)
		return nil, fmt.Errorf("sync page %d: %w", request.PageNumber, err)
	}
	metrics.MemberRecordsProcessedTotal.Add(float64(response.Processed))

	log.Info("페이지 동기화 완료",
		"processed", response.Processed,
		"skipped", response.Skipped,
		"latency", time.Since(start).String(),
	)
	return response, nil
}

// generateOne returns the member id it worked on, when one could be decoded,
// and the record to store.
func (s *SyncService) generateOne(ctx context.Context, raw json.RawMessage, pageNumber int, online bool) (string, *model.MemberData, error) {
	var input memberdata.RawMemberInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return peekMemberID(raw), nil, fmt.Errorf("decode member: %v: %w", err, memberdata.ErrInvalidMemberData)
	}

	record, err := s.generator.GenerateUpdatedMemberData(ctx, &input, pageNumber, online)
	if err != nil {
		return input.MemberID, nil, err
	}

	actor := model.ActorMigration
	if record.CreatedBy == nil {
		record.CreatedBy = &actor
	}
	record.UpdatedBy = &actor
	return input.MemberID, record, nil
}

// peekMemberID pulls memberid out of a record that failed to decode as a whole.
func peekMemberID(raw json.RawMessage) string {
	var head struct {
		MemberID any `json:"memberid"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	if id, ok := head.MemberID.(string); ok {
		return id
	}
	return ""
}
