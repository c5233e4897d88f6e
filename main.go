package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beka-birhanu/maze-forge-api/api"
	api_i "github.com/beka-birhanu/maze-forge-api/api/i"
	"github.com/beka-birhanu/maze-forge-api/api/identity"
	mazeapi "github.com/beka-birhanu/maze-forge-api/api/maze"
	"github.com/beka-birhanu/maze-forge-api/config"
	"github.com/beka-birhanu/maze-forge-api/infrastruture/designcache"
	"github.com/beka-birhanu/maze-forge-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-forge-api/infrastruture/token"
	"github.com/beka-birhanu/maze-forge-api/service"
	"github.com/beka-birhanu/maze-forge-api/service/i"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	designRepo      i.DesignRepo
	designCache     i.DesignCache
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	forge           i.DesignForger
	forgeController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Fatalf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatalf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	designRepo = repo.NewDesignRepo(client, config.Envs.DBName, "designs")
	appLogger.Printf("%s[INFO]%s Repositories initialized", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Fatalf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
	}

	designCache = designcache.New(redisClient, 0)
	appLogger.Printf("%s[INFO]%s Blueprint cache initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Fatalf("%s[ERROR]%s Creating auth service: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Auth service initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Printf("%s[INFO]%s Auth controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initForge() {
	forgeLogger := log.New(os.Stdout, config.ColorCyan+"[FORGE] "+config.ColorReset, log.LstdFlags)

	var err error
	forge, err = service.NewForge(designRepo, designCache, &service.Options{
		MaxConcurrent: config.Envs.MaxConcurrentForges,
		MaxGridArea:   config.Envs.MaxGridArea,
		Logger:        forgeLogger,
	})
	if err != nil {
		appLogger.Fatalf("%s[ERROR]%s Creating forge service: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Forge service initialized", config.LogInfoColor, config.LogColorReset)
}

func initForgeController() {
	var err error
	forgeController, err = mazeapi.NewForgeController(forge)
	if err != nil {
		appLogger.Fatalf("%s[ERROR]%s Creating forge controller: %v", config.LogErrorColor, config.LogColorReset, err)
	}
	appLogger.Printf("%s[INFO]%s Forge controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, forgeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger = log.New(os.Stdout, config.ColorBlue+"[APP] "+config.ColorReset, log.LstdFlags)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRepos(mongoClient)
	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initForge()
	initForgeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Fatalf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
	}
}
