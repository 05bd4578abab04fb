package main

import (
	"context"
	"errors"
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/delivery/http/controllers"
	"lifeledger-service/internal/app/delivery/http/middlewares"
	"lifeledger-service/internal/app/delivery/http/routers"
	"lifeledger-service/internal/app/drivers/database"
	"lifeledger-service/internal/app/drivers/logger"
	drivermailer "lifeledger-service/internal/app/drivers/mailer"
	"lifeledger-service/internal/app/drivers/messaging"
	driverstorage "lifeledger-service/internal/app/drivers/storage"
	"lifeledger-service/internal/app/services/core/notification"
	"lifeledger-service/internal/app/services/core/registration"
	"lifeledger-service/internal/app/services/core/registry"
	"lifeledger-service/internal/app/services/shared/contract"
	"lifeledger-service/internal/app/services/shared/deliverylog"
	"lifeledger-service/internal/app/services/shared/locker"
	"lifeledger-service/internal/app/services/shared/mailer"
	"lifeledger-service/internal/app/services/shared/ratelimiter"
	"lifeledger-service/internal/app/services/shared/redis"
	"lifeledger-service/internal/app/services/shared/storage"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type application struct {
	consumer *mailer.Consumer
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	registerer := prometheus.NewRegistry()
	registerer.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registerer)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Registration.LockEnabled || internalConfig.RateLimit.RecipientQuotaEnabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.MongoDB.DeliveryLogEnabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if internalConfig.Mailer.Driver == constvars.MailerDriverRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrapingTheApp(ctx, bootstrap, registerer, m)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if app.consumer != nil {
		group.Go(func() error {
			return app.consumer.Run(groupCtx)
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Waiting for pending requests that already received by server to be processed..")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
		)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown", zap.Error(err))
		}
		return bootstrap.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
	log.Info("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, gatherer prometheus.Gatherer, m *metrics.Metrics) (*application, error) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig
	app := new(application)

	// Contract
	var objectStorage contracts.ObjectStorage
	if internalConfig.Contract.ArtifactSource == constvars.ArtifactSourceMinio {
		minioClient := driverstorage.NewMinio(driverConfig, internalConfig.Contract.ArtifactBucket)
		objectStorage = storage.NewMinioStorage(minioClient)
	}

	registryContract, backend, err := contract.Open(ctx, log, driverConfig, internalConfig, objectStorage, m)
	if err != nil {
		log.Warn("Registry contract unavailable, registry routes will report not connected", zap.Error(err))
	} else {
		bootstrap.ContractClose = backend.Close
	}

	// Mailer
	smtpSender := mailer.NewSMTPSender(drivermailer.NewSMTPClient(driverConfig), log)
	sender := smtpSender
	if bootstrap.RabbitMQ != nil {
		sender, err = mailer.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Mailer.Queue, log)
		if err != nil {
			return nil, err
		}
		app.consumer, err = mailer.NewConsumer(bootstrap.RabbitMQ, internalConfig.Mailer.Queue, smtpSender, log, internalConfig.Mailer.Prefetch)
		if err != nil {
			return nil, err
		}
	}

	// Delivery log
	deliveryLog := deliverylog.NewNoopRepository()
	if bootstrap.MongoDB != nil {
		deliveryLog = deliverylog.NewDeliveryLogMongoRepository(
			bootstrap.MongoDB,
			driverConfig.MongoDB.DbName,
			internalConfig.MongoDB.DeliveryLogCollection,
		)
	}

	// Redis-backed guards
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	var recipientQuota contracts.RecipientQuota
	if redisRepository != nil && internalConfig.RateLimit.RecipientQuotaEnabled {
		recipientQuota = ratelimiter.NewRecipientQuota(
			redisRepository,
			log,
			internalConfig.RateLimit.RecipientQuota,
			time.Duration(internalConfig.RateLimit.RecipientQuotaWindowInSeconds)*time.Second,
		)
	}

	// Notification
	notificationTimeout := time.Duration(internalConfig.Notification.TimeoutInSeconds) * time.Second
	notificationUsecase := notification.NewNotificationUsecase(log, internalConfig, driverConfig, sender, deliveryLog, recipientQuota, m)
	notifier := notification.NewInProcessNotifier(notificationUsecase)
	if !internalConfig.Notification.InProcess {
		notifier = notification.NewHTTPNotifier(log, internalConfig.Notification.RelayUrl, notificationTimeout)
	}

	// Registration lock
	registrationLocker := locker.NewNoopLocker()
	if redisRepository != nil && internalConfig.Registration.LockEnabled {
		registrationLocker = locker.NewLockService(redisRepository, log)
	}

	// Usecases
	registrationUsecase := registration.NewRegistrationUsecase(log, internalConfig, registrationLocker, notifier, m)
	registryUsecase := registry.NewRegistryUsecase(log)
	bootstrap.WorkerStop = registrationUsecase.Wait

	// Controllers
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctrls := &routers.Controllers{
		Notification: controllers.NewNotificationController(log, notificationUsecase, notificationTimeout),
		Registration: controllers.NewRegistrationController(log, registrationUsecase, registryContract),
		Registry:     controllers.NewRegistryController(log, registryUsecase, registryContract, requestTimeout),
		System:       controllers.NewSystemController(log, internalConfig, notificationUsecase, registryUsecase, registryContract, routers.AvailableRoutes, requestTimeout),
	}

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:            log,
		InternalConfig: internalConfig,
		Metrics:        m,
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, ctrls, gatherer)
	return app, nil
}
