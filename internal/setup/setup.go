package setup

import (
	"context"

	"github.com/ashchan-dev/ashchan/internal/config"
	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/handler"
	"github.com/ashchan-dev/ashchan/internal/service"
	"github.com/ashchan-dev/ashchan/internal/storage/pg"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Re-seeding on every start is a no-op once the boards exist.
	if err := storage.SeedBoards(domain.DefaultBoards); err != nil {
		storage.Cleanup()
		return nil, err
	}

	sanitizer := utils.NewTextSanitizer()

	board := service.NewBoard(storage, &utils.BoardCodeValidator{}, cfg.Public.ThreadWindow)
	thread := service.NewThread(storage, &utils.ThreadValidator{}, sanitizer)
	post := service.NewPost(storage, &utils.PostValidator{}, sanitizer)

	h := handler.New(board, thread, post, storage, storage, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
