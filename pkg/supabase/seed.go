// pkg/supabase/seed.go

package supabase

import (
	"context"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// DefaultAdminEmail is the identity ensured by `ciq create admin-user`.
const DefaultAdminEmail = "john@claimsiq.ai"

// alreadyRegisteredFragment is the phrase GoTrue puts in its error when the
// submitted email already has an account. GoTrue exposes this condition only
// through message text, so the match lives behind IsAlreadyRegistered and is
// pinned by a unit test in case the upstream wording changes.
const alreadyRegisteredFragment = "already been registered"

// IsAlreadyRegistered reports whether err is GoTrue's duplicate-email error.
func IsAlreadyRegistered(err error) bool {
	return err != nil && strings.Contains(err.Error(), alreadyRegisteredFragment)
}

// AdminIdentity is the account the seeder ensures exists.
type AdminIdentity struct {
	Email    string
	Password string
}

// SeedStatus distinguishes the two benign seeding outcomes.
type SeedStatus int

const (
	SeedCreated SeedStatus = iota
	SeedAlreadyExists
)

// SeedResult reports what the seeder did.
type SeedResult struct {
	Status SeedStatus
	UserID string
	Email  string
}

// SeedAdminUser issues exactly one create-user request against the admin
// API, with the email pre-confirmed. A duplicate email comes back as
// SeedAlreadyExists with a nil error, which keeps repeated invocations
// idempotent. There is no retry; any other failure is returned as-is.
func SeedAdminUser(ctx context.Context, api AdminAPI, id AdminIdentity) (*SeedResult, error) {
	log := otelzap.Ctx(ctx)

	resp, err := api.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        id.Email,
		Password:     &id.Password,
		EmailConfirm: true,
	})
	if err != nil {
		if IsAlreadyRegistered(err) {
			log.Info("Admin user already exists, nothing to do",
				zap.String("email", id.Email))
			return &SeedResult{Status: SeedAlreadyExists, Email: id.Email}, nil
		}
		return nil, cerr.Wrapf(err, "failed to create admin user %s", id.Email)
	}

	result := &SeedResult{
		Status: SeedCreated,
		UserID: resp.ID.String(),
		Email:  resp.Email,
	}
	log.Info("Admin user created",
		zap.String("id", result.UserID),
		zap.String("email", result.Email))

	return result, nil
}
