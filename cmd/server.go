package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"paysched/internal/config"
	"paysched/internal/core"
	"paysched/internal/db"
	"paysched/internal/ethereum"
	"paysched/internal/http/handler"
	"paysched/internal/http/handler/middleware"
	"paysched/internal/http/payload"
	"paysched/internal/http/server"
	"paysched/internal/repository"
	"paysched/internal/session"
	"paysched/pkg/jwt"
	"paysched/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("paysched", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	dbConn, err := db.Open(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// sessions
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	defer redisClient.Close()

	if err = redisClient.Ping(ctx).Err(); err != nil {
		logger.Errorw("redis connection failed", "error", err, "addr", config.RedisAddr)
		return err
	}
	sessions := session.NewStore(redisClient, config.SessionTTL)

	// chain
	chain, closeChain, err := newChainClient(ctx, logger, config)
	if err != nil {
		logger.Errorw("chain client setup failed", "error", err)
		return err
	}
	defer closeChain()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// core
	resolver := core.NewIdentityResolver(logger, repo)
	authenticator := core.NewAuthenticator(logger, repo, sessions, jwtService, resolver, config.TokenTTLHours)
	scheduler := core.NewScheduler(logger, repo, chain)
	history := core.NewHistory(logger, repo)

	// handler
	authHlr := handler.NewAuthHandler(logger, payload.Decoder{}, authenticator, sessions.TTL())
	web3Hlr := handler.NewWeb3Handler(logger, payload.Decoder{}, scheduler, history)

	// register routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authHlr, web3Hlr)

	// middleware
	hdlr := middleware.NewAuthMiddleware(logger, authenticator).Authenticate(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

// newChainClient dials the node once; the same connection backs both the
// typed client and raw JSON-RPC calls.
func newChainClient(ctx context.Context, logger *zap.SugaredLogger, config config.App) (*ethereum.ChainClient, func(), error) {
	contract, err := ethereum.ParseAddress(config.ContractAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("payment scheduler address: %w", err)
	}

	rpcClient, err := rpc.DialContext(ctx, config.NodeURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial node: %w", err)
	}
	client := ethclient.NewClient(rpcClient)

	var operator ethereum.Submitter
	if config.OperatorPrivateKey != "" {
		operator, err = ethereum.NewKeySubmitter(client, config.OperatorPrivateKey)
	} else {
		operator, err = ethereum.NewDefaultNodeAccountSubmitter(ctx, rpcClient)
	}
	if err != nil {
		rpcClient.Close()
		return nil, nil, fmt.Errorf("operator signer: %w", err)
	}
	logger.Infow("operator signer ready", "address", operator.Address().Hex())

	chain, err := ethereum.NewChainClient(logger, client, rpcClient, operator, ethereum.ChainClientConfig{
		Contract:            contract,
		ConfirmationTimeout: config.ConfirmationTimeout,
		PollInterval:        config.PollInterval,
	})
	if err != nil {
		rpcClient.Close()
		return nil, nil, err
	}

	return chain, rpcClient.Close, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return sdErr
	}

	return err
}
