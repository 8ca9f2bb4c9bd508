package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/event_subscriber"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/repository"
	"gitlab.com/open-soft/go-crypto-dashboard/src/service"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

func InitServiceContainer(cfg *Config, log logger.Interface) (*Container, error) {
	symbols, err := cfg.LoadSupportedSymbols()
	if err != nil {
		return nil, err
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone %s: %w", cfg.App.Timezone, err)
	}

	container := &Container{
		Config:  cfg,
		Logger:  log,
		Symbols: symbols,
	}

	storage, err := container.initStorage()
	if err != nil {
		container.Close()

		return nil, err
	}

	formatter := utils.Formatter{Location: location}
	api := client.DashboardAPI{
		HttpClient: client.NewHttpClient(cfg.API.BaseURL, cfg.API.Timeout),
		Formatter:  &formatter,
	}

	address, err := client.SocketAddress(cfg.API.BaseURL)
	if err != nil {
		container.Close()

		return nil, err
	}

	chartService := service.ChartService{
		API:       &api,
		Formatter: &formatter,
		Limit:     cfg.API.KlineLimit,
	}
	sessionService := service.SessionService{
		Storage: storage,
	}

	container.Formatter = &formatter
	container.DashboardAPI = &api
	container.Storage = storage
	container.SessionService = &sessionService
	container.ChartService = &chartService
	container.Converter = &service.Converter{
		API:       &api,
		Formatter: &formatter,
	}
	container.QueryService = &service.QueryService{
		API:            &api,
		SessionService: &sessionService,
	}
	container.BootService = &service.BootService{
		API:     &api,
		Symbols: symbols,
		Logger:  log,
	}
	container.PriceBoard = service.NewPriceBoard(&formatter)
	container.EventDispatcher = &service.EventDispatcher{
		Enabled: true,
		Subscribers: []event_subscriber.SubscriberInterface{
			&event_subscriber.LogEventSubscriber{Logger: log},
		},
	}
	container.PushChannel = &client.PushChannel{
		Address:        address,
		Dispatcher:     container.EventDispatcher,
		Logger:         log,
		ReconnectDelay: cfg.API.ReconnectDelay,
	}

	return container, nil
}

func (c *Container) initStorage() (repository.LocalStorageInterface, error) {
	switch c.Config.Storage.Driver {
	case "", StorageDriverFile:
		return repository.NewFileStorage(c.Config.Storage.Path), nil
	case StorageDriverRedis:
		c.RDB = redis.NewClient(&redis.Options{
			Addr:     c.Config.Redis.DSN,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})

		return &repository.RedisStorage{
			RDB:    c.RDB,
			Prefix: c.Config.Redis.Prefix,
		}, nil
	case StorageDriverMySQL:
		db, err := sql.Open("mysql", c.Config.MySQL.DSN)
		if err != nil {
			return nil, fmt.Errorf("MySQL can't connect: %w", err)
		}

		db.SetMaxIdleConns(2)
		db.SetMaxOpenConns(4)
		db.SetConnMaxLifetime(time.Minute)
		c.Db = db

		storage := &repository.MySQLStorage{DB: db, TimeService: &utils.TimeHelper{}}
		ctx, cancel := context.WithTimeout(context.Background(), c.Config.API.Timeout)
		defer cancel()
		if err := storage.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("MySQL schema: %w", err)
		}

		return storage, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", c.Config.Storage.Driver)
	}
}

type Container struct {
	Config          *Config
	Logger          logger.Interface
	Symbols         model.SupportedSymbols
	Formatter       *utils.Formatter
	Db              *sql.DB
	RDB             *redis.Client
	Storage         repository.LocalStorageInterface
	DashboardAPI    *client.DashboardAPI
	PushChannel     *client.PushChannel
	EventDispatcher *service.EventDispatcher
	SessionService  *service.SessionService
	ChartService    *service.ChartService
	Converter       *service.Converter
	QueryService    *service.QueryService
	BootService     *service.BootService
	PriceBoard      *service.PriceBoard
}

// Subscribe registers an additional push channel subscriber, e.g. the UI once
// its program exists.
func (c *Container) Subscribe(subscriber event_subscriber.SubscriberInterface) {
	c.EventDispatcher.Subscribers = append(c.EventDispatcher.Subscribers, subscriber)
}

func (c *Container) Close() {
	if c.Db != nil {
		_ = c.Db.Close()
	}

	if c.RDB != nil {
		_ = c.RDB.Close()
	}
}
