package commands

import (
	"context"
	"log/slog"

	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/internal/usecase/shared"
)

var (
	ErrInvalidOAuthState     = errs.New("invalid oauth state")
	ErrCalendarConnectFailed = errs.New("calendar connection failed")
)

type CalendarConnectCommands interface {
	StartConnect(ctx context.Context, slug string) (string, error)
	// CompleteConnect stores the new credential and closes any open disconnection episode.
	CompleteConnect(ctx context.Context, code, state string) (string, error)
}

type calendarConnectCommandsImpl struct {
	config    queries.ConfigQueries
	connector shared.CalendarConnector
	signer    StateSigner
	uow       shared.UnitOfWork
	logger    *slog.Logger
}

func NewCalendarConnectCommands(
	config queries.ConfigQueries,
	connector shared.CalendarConnector,
	signer StateSigner,
	uow shared.UnitOfWork,
	logger *slog.Logger,
) CalendarConnectCommands {
	return &calendarConnectCommandsImpl{
		config:    config,
		connector: connector,
		signer:    signer,
		uow:       uow,
		logger:    logger,
	}
}

func (c *calendarConnectCommandsImpl) StartConnect(ctx context.Context, slug string) (string, error) {
	if _, err := c.config.Resolve(ctx, slug); err != nil {
		return "", err
	}

	state, err := c.signer.SignState(slug)
	if err != nil {
		return "", errs.Mark(err, ErrCalendarConnectFailed)
	}
	return c.connector.AuthCodeURL(state), nil
}

func (c *calendarConnectCommandsImpl) CompleteConnect(ctx context.Context, code, state string) (string, error) {
	slug, err := c.signer.VerifyState(state)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidOAuthState)
	}
	if code == "" {
		return "", ErrCalendarConnectFailed
	}

	refreshToken, calendarEmail, err := c.connector.ExchangeCode(ctx, code)
	if err != nil {
		c.logger.Warn("oauth code exchange failed", "slug", slug, "error", err.Error())
		return "", errs.Mark(err, ErrCalendarConnectFailed)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Businesses().StoreCredential(ctx, tx.DB(), slug, refreshToken, calendarEmail)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", queries.ErrBusinessNotFound
		}
		return "", errs.Mark(err, ErrCalendarConnectFailed)
	}

	c.logger.Info("calendar connected", "slug", slug)
	return slug, nil
}
