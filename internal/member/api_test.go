package member_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/member"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/memberdata"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// setupTestEnvironment wires the member handlers on an in-memory database
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	repository := member.NewMemberDataRepository()
	memberService := member.NewMemberService(db, repository)
	syncService := member.NewSyncService(cfg, db, repository, memberdata.NewGenerator(memberService))
	memberHandler := member.NewMemberHandler(memberService, syncService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/:memberId", memberHandler.GetMember)
	router.POST("/api/v1/members/sync", memberHandler.SyncPage)

	return &testEnv{db: db, router: router}
}

func syncRequest(pageNumber int, online bool, members ...string) testutil.TestRequest {
	raw := make([]any, 0, len(members))
	for _, m := range members {
		raw = append(raw, testutil.RawJSON(m))
	}
	return testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/sync",
		Body: map[string]any{
			"pageNumber": pageNumber,
			"online":     online,
			"members":    raw,
		},
	}
}

func getMember(t *testing.T, env *testEnv, memberID string) model.MemberData {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/" + memberID,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var record model.MemberData
	testutil.ParseResponse(t, recorder, &record)
	return record
}

func TestSyncPage_ProcessesAndSkips(t *testing.T) {
	// Given: Setup test environment
	env := setupTestEnvironment(t)

	// Given: Two valid members, one without memberships and one with malformed memberships
	request := syncRequest(3, true,
		`{"memberid":"m1","email":"ann@example.com","memberships":["pro"],"firstname":" Ann ","lastname":"Lee",
		  "addresses":[{"key":"home","latitude":40.7128,"longitude":-74.006}],
		  "migrationData":{"addressinfo":{"home":"all"},"schedule_code":"https://book.example.com/ann"}}`,
		`{"memberid":"m2","email":"bob@example.com","memberships":["pro"],"action":"drop"}`,
		`{"memberid":"m3","email":"cy@example.com"}`,
		`{"memberid":"m4","email":"di@example.com","memberships":"pro"}`,
	)

	// When: Execute sync request
	recorder := testutil.ExecuteRequest(t, env.router, request)

	// Then: Valid members are stored, invalid ones skipped
	require.Equal(t, http.StatusOK, recorder.Code)

	var response member.SyncPageResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 3, response.PageNumber)
	assert.Equal(t, 2, response.Processed)
	assert.Equal(t, 2, response.Skipped)
	assert.ElementsMatch(t, []string{"m3", "m4"}, response.SkippedMemberIDs)

	ann := getMember(t, env, "m1")
	assert.Equal(t, "Ann Lee", ann.FullName)
	assert.Equal(t, 3, ann.PageNumber)
	assert.Equal(t, []string{"dr5"}, ann.LocHash)
	assert.Equal(t, "https://book.example.com/ann", ann.BookingURL)
	assert.True(t, ann.IsVisible)
	require.Len(t, ann.Addresses, 1)
	assert.Equal(t, model.AddressStatusFullAddress, ann.Addresses[0].AddressStatus)

	bob := getMember(t, env, "m2")
	assert.False(t, bob.IsVisible)
	assert.Equal(t, []string{}, bob.Phones)
}

func TestSyncPage_PreservesContactFields(t *testing.T) {
	for _, online := range []bool{true, false} {
		t.Run(map[bool]string{true: "online", false: "offline"}[online], func(t *testing.T) {
			// Given: A stored member already linked to a CRM contact
			env := setupTestEnvironment(t)
			contactID := "contact-1"
			formEmail := "inbox@example.com"
			require.NoError(t, env.db.Create(&model.MemberData{
				MemberID:         "m1",
				Email:            "old@example.com",
				ContactID:        &contactID,
				ContactFormEmail: &formEmail,
				ShowContactForm:  true,
			}).Error)

			// When: The member is synced again
			recorder := testutil.ExecuteRequest(t, env.router, syncRequest(2, online,
				`{"memberid":"m1","email":"new@example.com","memberships":["pro"]}`))
			require.Equal(t, http.StatusOK, recorder.Code)

			// Then: Synced fields change, contact fields survive
			record := getMember(t, env, "m1")
			assert.Equal(t, "new@example.com", record.Email)
			assert.Equal(t, 2, record.PageNumber)
			require.NotNil(t, record.ContactID)
			assert.Equal(t, "contact-1", *record.ContactID)
			require.NotNil(t, record.ContactFormEmail)
			assert.Equal(t, "inbox@example.com", *record.ContactFormEmail)
			assert.True(t, record.ShowContactForm)
		})
	}
}

func TestSyncPage_RollsBackPageOnWriteFailure(t *testing.T) {
	// Given: Storage rejects one member of the page
	env := setupTestEnvironment(t)
	require.NoError(t, env.db.Callback().Create().Before("gorm:create").Register("test:reject_member", func(tx *gorm.DB) {
		if record, ok := tx.Statement.Dest.(*model.MemberData); ok && record.MemberID == "m-reject" {
			_ = tx.AddError(errors.New("storage rejected member"))
		}
	}))

	// When: A page with a storable member before the rejected one is synced
	recorder := testutil.ExecuteRequest(t, env.router, syncRequest(1, true,
		`{"memberid":"m1","email":"ann@example.com","memberships":["pro"]}`,
		`{"memberid":"m-reject","email":"bob@example.com","memberships":["pro"]}`,
	))

	// Then: The page fails and nothing of it is stored
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.MemberData{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSyncPage_RecordsMigrationActor(t *testing.T) {
	// Given: A member created by the members area
	env := setupTestEnvironment(t)
	creator := "members-area"
	require.NoError(t, env.db.Create(&model.MemberData{MemberID: "m1", Email: "old@example.com", BaseEntity: model.BaseEntity{CreatedBy: &creator}}).Error)

	// When: The stored member and a new one are synced
	recorder := testutil.ExecuteRequest(t, env.router, syncRequest(1, false,
		`{"memberid":"m1","email":"new@example.com","memberships":["pro"]}`,
		`{"memberid":"m2","email":"two@example.com","memberships":["pro"]}`,
	))
	require.Equal(t, http.StatusOK, recorder.Code)

	// Then: updated_by is the migration, created_by stays with the creator
	var existing, created model.MemberData
	require.NoError(t, env.db.Where("member_id = ?", "m1").First(&existing).Error)
	require.NoError(t, env.db.Where("member_id = ?", "m2").First(&created).Error)

	require.NotNil(t, existing.UpdatedBy)
	assert.Equal(t, model.ActorMigration, *existing.UpdatedBy)
	require.NotNil(t, existing.CreatedBy)
	assert.Equal(t, "members-area", *existing.CreatedBy)

	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, model.ActorMigration, *created.CreatedBy)
	require.NotNil(t, created.UpdatedBy)
	assert.Equal(t, model.ActorMigration, *created.UpdatedBy)
}

func TestSyncPage_ValidationError_MissingMembers(t *testing.T) {
	// Given: Setup test environment
	env := setupTestEnvironment(t)

	// When: Sync without a members array
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/sync",
		Body:   map[string]any{"pageNumber": 1},
	})

	// Then: Verify validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.NotEmpty(t, errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Message)
}

func TestGetMember_NotFound(t *testing.T) {
	// Given: Setup test environment
	env := setupTestEnvironment(t)

	// When: Request an unknown member
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/unknown",
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestMemberService_FindExisting(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	service := member.NewMemberService(env.db, member.NewMemberDataRepository())
	require.NoError(t, env.db.Create(&model.MemberData{MemberID: "m1", Email: "a@example.com"}).Error)

	// When / Then: Missing is (nil, nil)
	missing, err := service.FindExisting(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	found, err := service.FindExisting(context.Background(), "m1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a@example.com", found.Email)
}

func TestMemberService_SaveContactID(t *testing.T) {
	// Given
	env := setupTestEnvironment(t)
	service := member.NewMemberService(env.db, member.NewMemberDataRepository())
	require.NoError(t, env.db.Create(&model.MemberData{MemberID: "m1", Email: "a@example.com"}).Error)

	// When
	require.NoError(t, service.SaveContactID(context.Background(), "m1", "c-9"))
	err := service.SaveContactID(context.Background(), "ghost", "c-10")

	// Then
	var record model.MemberData
	require.NoError(t, env.db.Where("member_id = ?", "m1").First(&record).Error)
	require.NotNil(t, record.ContactID)
	assert.Equal(t, "c-9", *record.ContactID)
	require.NotNil(t, record.UpdatedBy)
	assert.Equal(t, model.ActorContactForm, *record.UpdatedBy)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
