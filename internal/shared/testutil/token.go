package testutil

import (
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/token"
)

// MockTokenIssuer is a mock implementation of token.Issuer for testing
type MockTokenIssuer struct {
	IssueServiceTokenFunc func(scope string) (string, error)
}

func (m *MockTokenIssuer) IssueServiceToken(scope string) (string, error) {
	if m.IssueServiceTokenFunc != nil {
		return m.IssueServiceTokenFunc(scope)
	}
	return "mock-service-token:" + scope, nil
}

// Ensure MockTokenIssuer implements token.Issuer
var _ token.Issuer = (*MockTokenIssuer)(nil)

// NewMockTokenIssuer creates a new mock token issuer with default behavior
func NewMockTokenIssuer() *MockTokenIssuer {
	return &MockTokenIssuer{}
}
