package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nsmosa/alumni-portal-api/internal/identity"
	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/repository"
	"github.com/nsmosa/alumni-portal-api/internal/store"
	appErrors "github.com/nsmosa/alumni-portal-api/pkg/errors"
)

func newMemberService(t *testing.T) *MemberService {
	t.Helper()
	members := repository.NewMemberRepository(store.NewMemoryStore())
	require.NoError(t, members.Append(context.Background(), models.Member{
		Email:    "alum@example.com",
		FullName: "Seeded Alum",
	}))
	return NewMemberService(identity.NewDirectoryProvider(members, 6), zap.NewNop())
}

func TestMemberRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newMemberService(t)

	registered, err := svc.Register(ctx, models.MemberRegisterRequest{
		Email:    "alum@example.com",
		Password: "secret1",
		FullName: "Alum One",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.UID)
	require.Equal(t, "alum@example.com", registered.Email)
	require.NotNil(t, registered.Profile)

	session, err := svc.Login(ctx, models.MemberLoginRequest{Email: "alum@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, registered.UID, session.UID)

	profile, err := svc.Profile(ctx, session.UID)
	require.NoError(t, err)
	require.Equal(t, "alum@example.com", profile.Email)
	require.Empty(t, profile.PasswordHash)
}

func TestMemberAuthErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	svc := newMemberService(t)

	// Registration requires a seeded member document.
	_, err := svc.Register(ctx, models.MemberRegisterRequest{
		Email:    "stranger@example.com",
		Password: "secret1",
		FullName: "Stranger",
	})
	var authErr *identity.AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, identity.CodeUserNotFound, authErr.Code)

	_, err = svc.Login(ctx, models.MemberLoginRequest{Email: "alum@example.com", Password: "never-set"})
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, identity.CodeWrongPassword, authErr.Code)
}

func TestMemberProfileMissing(t *testing.T) {
	svc := newMemberService(t)

	_, err := svc.Profile(context.Background(), "no-such-uid")
	require.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}
