package memberdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
)

// ExistingFinder looks up the persisted record of a member.
// A missing record is reported as (nil, nil).
type ExistingFinder interface {
	FindExisting(ctx context.Context, memberID string) (*model.MemberData, error)
}

// Generator runs the member data pipeline: validate, build, enrich.
type Generator struct {
	finder ExistingFinder
}

func NewGenerator(finder ExistingFinder) *Generator {
	return &Generator{
		finder: finder,
	}
}

// GenerateUpdatedMemberData returns the canonical record for input.
// With online set the persisted record is fetched and used as the merge baseline.
// Invalid input yields an error wrapping ErrInvalidMemberData; lookup errors are
// returned as is.
func (g *Generator) GenerateUpdatedMemberData(ctx context.Context, input *RawMemberInput, currentPageNumber int, online bool) (*model.MemberData, error) {
	if !ValidateCoreMemberData(ctx, input) {
		return nil, invalidInputError()
	}

	var existing *model.MemberData
	if online {
		if g.finder == nil {
			return nil, errors.New("memberdata: existing record finder is nil")
		}
		found, err := g.finder.FindExisting(ctx, input.MemberID)
		if err != nil {
			return nil, err
		}
		existing = found
	}

	record := CreateCoreMemberData(ctx, input, existing, currentPageNumber)
	if record == nil {
		return nil, invalidInputError()
	}

	EnrichWithMigrationData(record, input.MigrationData)
	EnrichWithAddressData(record, input.Addresses, input.MigrationData.addressInfo())

	return record, nil
}

func invalidInputError() error {
	return fmt.Errorf("invalid member data: memberid, email (valid string), and memberships (array) are required: %w", ErrInvalidMemberData)
}
