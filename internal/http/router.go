package http

import (
	"context"
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sneakr-backend/docs"
	"sneakr-backend/internal/common/config"
	"sneakr-backend/internal/common/middleware"
	"sneakr-backend/internal/common/token"
	adminhttp "sneakr-backend/internal/features/admin/delivery/http"
	adminservice "sneakr-backend/internal/features/admin/service"
	authhttp "sneakr-backend/internal/features/auth/delivery/http"
	authservice "sneakr-backend/internal/features/auth/service"
	cataloghttp "sneakr-backend/internal/features/catalog/delivery/http"
	catalogmysql "sneakr-backend/internal/features/catalog/repository/mysql"
	catalogservice "sneakr-backend/internal/features/catalog/service"
	listshttp "sneakr-backend/internal/features/lists/delivery/http"
	listsmysql "sneakr-backend/internal/features/lists/repository/mysql"
	listsservice "sneakr-backend/internal/features/lists/service"
	notificationhttp "sneakr-backend/internal/features/notification/delivery/http"
	notificationservice "sneakr-backend/internal/features/notification/service"
	profilehttp "sneakr-backend/internal/features/profile/delivery/http"
	profileservice "sneakr-backend/internal/features/profile/service"
	userrepo "sneakr-backend/internal/features/user/repository"
	usermysql "sneakr-backend/internal/features/user/repository/mysql"
	"sneakr-backend/internal/platform/mail"
	"sneakr-backend/internal/platform/redis"
)

// roleSource adapts the user repository to the middleware's role
// lookup, translating the repository sentinel on the way.
type roleSource struct {
	users userrepo.UserRepository
}

func (r roleSource) GetRole(ctx context.Context, userID int64) (string, error) {
	role, err := r.users.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			return "", middleware.ErrNoSuchUser
		}
		return "", err
	}
	return role, nil
}

// NewRouter wires every feature onto a gin engine. rdb may be nil, in
// which case login rate limiting is off.
func NewRouter(db *sqlx.DB, rdb *redis.Client, sender mail.Sender, cfg *config.Config) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.Server.Origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	users := usermysql.NewMySQLRepository(db)
	catalog := catalogmysql.NewMySQLRepository(db)
	wishlist := listsmysql.NewWishlistRepository(db)
	collection := listsmysql.NewCollectionRepository(db)

	tokens := token.NewManager(cfg.Auth.JWTSecret, time.Hour)
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireAdmin(roleSource{users: users})

	var loginLimiter gin.HandlerFunc
	if rdb != nil {
		loginLimiter = middleware.LoginRateLimit(rdb,
			cfg.Redis.LoginLimit, time.Duration(cfg.Redis.LoginWindow)*time.Second)
	}

	root := &r.RouterGroup

	authhttp.NewAuthHandler(authservice.NewAuthService(users, tokens)).
		RegisterRoutes(root, requireAuth, loginLimiter)
	cataloghttp.NewCatalogHandler(catalogservice.NewCatalogService(catalog)).
		RegisterRoutes(root)
	listshttp.NewListHandler(listsservice.NewListService(wishlist), "wishlist").
		RegisterRoutes(root, requireAuth)
	listshttp.NewListHandler(listsservice.NewListService(collection), "collection").
		RegisterRoutes(root, requireAuth)
	profilehttp.NewProfileHandler(profileservice.NewProfileService(users, cfg.Uploads.Dir)).
		RegisterRoutes(root, requireAuth)
	adminhttp.NewAdminHandler(adminservice.NewAdminService(users)).
		RegisterRoutes(root, requireAuth, requireAdmin)
	notificationhttp.NewNotificationHandler(notificationservice.NewNotificationService(collection, sender)).
		RegisterRoutes(root, requireAuth)

	r.Static("/uploads", cfg.Uploads.Dir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
