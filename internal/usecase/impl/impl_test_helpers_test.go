package impl

import (
	"io"
	"log/slog"

	"zml/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var verifiedTokenFixture = entity.VerifiedToken{
	UID:    "user-123",
	Claims: map[string]any{},
}
