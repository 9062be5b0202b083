package router

import (
	"github.com/lakshanchamidu/Blog-Platform/internal/application"
	"github.com/lakshanchamidu/Blog-Platform/internal/container"
	pginfra "github.com/lakshanchamidu/Blog-Platform/internal/infrastructure/postgres"
	handlers "github.com/lakshanchamidu/Blog-Platform/internal/interface/http"
	"github.com/lakshanchamidu/Blog-Platform/internal/router/modules"
)

// InitModules builds each feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	blogRepo := pginfra.NewBlogRepository(pool)
	categoryRepo := pginfra.NewCategoryRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, emailPublisher(), logger)
	blogSvc := application.NewBlogService(blogRepo, categoryRepo, logger,
		container.GetGCS(), cfg.GCSBucket,
		container.GetES(), cfg.ESPostsIndex)
	categorySvc := application.NewCategoryService(categoryRepo, container.GetRedis(), logger)
	commentSvc := application.NewCommentService(commentRepo, blogRepo)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewBlogModule(handlers.NewBlogHandler(blogSvc, logger), jwt))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), jwt))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc, logger), jwt))
}

// emailPublisher returns the rabbit publisher as the service-level interface,
// keeping the nil check honest: a nil *RabbitPublisher must stay a nil
// interface value.
func emailPublisher() application.EmailPublisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}
