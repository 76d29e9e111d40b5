package commands

import (
	"context"

	"carhive/internal/domain/user"
	reqdto "carhive/internal/handler/dto/request"
	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/pkg/errs"
	"carhive/internal/pkg/jwt"
	"carhive/internal/pkg/password"
	"carhive/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailAlreadyTaken    = errs.New("email already taken")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	userRepo    UserRepository
	readStore   UserReadStore
	userQueries queries.UserQueries
	jwtService  *jwt.Service
	db          db.DBTX
}

// UserReadStore exposes the credential lookup the login flow needs; the
// password hash stays inside this use case.
type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

func NewAuthCommands(
	userRepo UserRepository,
	readStore UserReadStore,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	db db.DBTX,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:    userRepo,
		readStore:   readStore,
		userQueries: userQueries,
		jwtService:  jwtService,
		db:          db,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, userRole(view.Role))
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: view, AccessToken: token}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	userEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := a.userRepo.Create(ctx, a.db, userEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := a.userQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func userRole(s string) user.Role {
	role, err := user.NewRole(s)
	if err != nil {
		return user.RoleCustomer
	}
	return role
}
