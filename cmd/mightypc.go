package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/SviatSloboda/MightyPC-sub001/internal/client"
	"github.com/SviatSloboda/MightyPC-sub001/internal/configuration"
	"github.com/SviatSloboda/MightyPC-sub001/internal/database"
	"github.com/SviatSloboda/MightyPC-sub001/internal/logger"
	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
	"github.com/SviatSloboda/MightyPC-sub001/internal/server"
	"github.com/SviatSloboda/MightyPC-sub001/internal/service"
)

func runApp() error {
	appContext := context.Background()
	logOutput := io.Writer(os.Stdout)
	appLogger := logger.NewLogger(false, false, true, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration from config.toml:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("mightypc_backend.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogDebugEnabled, config.LogInfoEnabled, config.LogErrorEnabled, logOutput)

	appLogger.Info("Connecting to DB at", config.DatabaseURI)
	dbConn, err := database.ConnectDB(appContext, config.DatabaseURI)
	if err != nil {
		appLogger.Error("Error connecting to DB:", err)
		return err
	}
	defer func() {
		if err := dbConn.Disconnect(appContext); err != nil {
			appLogger.Error("Error disconnecting from DB:", err)
		}
	}()
	db := database.Database{Database: dbConn.Database(database.Name)}

	var oauthKeys jwk.Set
	if config.OAuthJWKSURL != "" {
		appLogger.Info("Fetching OAuth JWKS from", config.OAuthJWKSURL)
		oauthKeys, err = jwk.Fetch(appContext, config.OAuthJWKSURL)
		if err != nil {
			appLogger.Error("Error fetching OAuth JWKS:", err)
			return err
		}
	}

	apiClient := client.Client{
		Client:           &http.Client{Timeout: 15 * time.Second},
		Redis:            redis.NewClient(&redis.Options{Addr: config.RedisAddress}),
		ImageHostURL:     config.ImageHostURL,
		ImageHostKey:     config.ImageHostKey,
		CompletionAPIURL: config.CompletionAPIURL,
		CompletionAPIKey: config.CompletionAPIKey,
		CompletionModel:  config.CompletionModel,
		Logger:           appLogger,
	}

	basket := service.Basket{Store: db}
	srv := server.Server{
		Client:        apiClient,
		Logger:        appLogger,
		AuthSecretKey: config.AuthSecretKey,
		OAuthIssuer:   config.OAuthIssuer,
		OAuthKeys:     oauthKeys,

		Users:        service.Users{Store: db},
		Basket:       basket,
		Orders:       service.Orders{Basket: basket},
		Configurator: service.Configurator{Client: apiClient},

		CPUs: service.Catalog[model.CPU, *model.CPU]{
			Store:    database.NewComponentStore[model.CPU](db, database.CollectionCPUs),
			NotFound: service.ErrCPUNotFound,
		},
		GPUs: service.Catalog[model.GPU, *model.GPU]{
			Store:    database.NewComponentStore[model.GPU](db, database.CollectionGPUs),
			NotFound: service.ErrGPUNotFound,
		},
		RAMs: service.Catalog[model.RAM, *model.RAM]{
			Store:    database.NewComponentStore[model.RAM](db, database.CollectionRAMs),
			NotFound: service.ErrRAMNotFound,
		},
		SSDs: service.Catalog[model.SSD, *model.SSD]{
			Store:    database.NewComponentStore[model.SSD](db, database.CollectionSSDs),
			NotFound: service.ErrSSDNotFound,
		},
		HDDs: service.Catalog[model.HDD, *model.HDD]{
			Store:    database.NewComponentStore[model.HDD](db, database.CollectionHDDs),
			NotFound: service.ErrHDDNotFound,
		},
		Motherboards: service.Catalog[model.Motherboard, *model.Motherboard]{
			Store:    database.NewComponentStore[model.Motherboard](db, database.CollectionMotherboards),
			NotFound: service.ErrMotherboardNotFound,
		},
		PowerSupplies: service.Catalog[model.PowerSupply, *model.PowerSupply]{
			Store:    database.NewComponentStore[model.PowerSupply](db, database.CollectionPowerSupplies),
			NotFound: service.ErrPowerSupplyNotFound,
		},
		PcCases: service.Catalog[model.PcCase, *model.PcCase]{
			Store:    database.NewComponentStore[model.PcCase](db, database.CollectionPcCases),
			NotFound: service.ErrPcCaseNotFound,
		},
		PCs: service.Catalog[model.PC, *model.PC]{
			Store:    database.NewComponentStore[model.PC](db, database.CollectionPCs),
			NotFound: service.ErrPCNotFound,
		},
		Workstations: service.Catalog[model.Workstation, *model.Workstation]{
			Store:    database.NewComponentStore[model.Workstation](db, database.CollectionWorkstations),
			NotFound: service.ErrWorkstationNotFound,
		},
	}

	httpSrv := &http.Server{
		Handler:      srv.Router(),
		Addr:         config.ServerAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	appLogger.Info("Serving on", httpSrv.Addr)
	return httpSrv.ListenAndServe()
}
