package platform

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/token"
)

const createMemberPath = "/members/v1/members"

// ContactDetails describes the directory member a site member is created for.
type ContactDetails struct {
	FirstName        string
	LastName         string
	Email            string
	Phones           []string
	ContactFormEmail string
}

type createMemberRequest struct {
	Member memberPayload `json:"member"`
}

type memberPayload struct {
	Contact    contactPayload `json:"contact"`
	LoginEmail string         `json:"loginEmail"`
}

type contactPayload struct {
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Phones    []string `json:"phones"`
	Emails    []string `json:"emails"`
}

type createMemberResponse struct {
	Member struct {
		ID        string `json:"_id"`
		ContactID string `json:"contactId"`
	} `json:"member"`
}

func prepareContactData(details ContactDetails) createMemberRequest {
	// some members have no phones
	phones := details.Phones
	if phones == nil {
		phones = []string{}
	}

	contactEmail := details.ContactFormEmail
	if contactEmail == "" {
		contactEmail = details.Email
	}

	return createMemberRequest{
		Member: memberPayload{
			Contact: contactPayload{
				FirstName: details.FirstName,
				LastName:  details.LastName,
				Phones:    phones,
				Emails:    []string{contactEmail},
			},
			LoginEmail: details.Email,
		},
	}
}

// CreateMember creates a site member (and its CRM contact) and returns the contact id.
func (c *Client) CreateMember(ctx context.Context, details ContactDetails) (string, error) {
	log := logger.FromContext(ctx)

	var result createMemberResponse
	if err := c.post(ctx, token.ScopeMembersCreate, createMemberPath, prepareContactData(details), &result); err != nil {
		log.Error("Error in createSiteMember", "email", logger.MaskEmail(details.Email), "error", err)
		return "", err
	}

	contactID := result.Member.ContactID
	if contactID == "" {
		contactID = result.Member.ID
	}
	if contactID == "" {
		return "", fmt.Errorf("create member: empty member id in response: %w", ErrPlatformRequest)
	}

	log.Info("사이트 회원 생성 완료", "email", logger.MaskEmail(details.Email), "contactId", contactID)
	return contactID, nil
}
