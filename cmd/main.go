package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	apiHttp "doctor/internal/api/http"
	"doctor/internal/controllers"
	mongoRepo "doctor/internal/repository/mongo"
	"doctor/internal/repository/postgres"
	"doctor/internal/usecasees"
	"doctor/internal/usecasees/structs"

	"github.com/gofiber/fiber/v2"
	"github.com/ic2hrmk/promtail"
)

func main() {
	var app App
	var confFileName string
	var once bool

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.BoolVar(&once, "once", false, "run a single reconciliation pass and exit")
	flag.Parse()

	app.Name = "doctor"

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	if err := app.initLoki(); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.InitMetrics()
	app.initCron()

	chatId, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	orderRepo := postgres.NewOrderRepository(app.DB)
	positionRepo := postgres.NewPositionRepository(app.DB)
	activityRepo := postgres.NewActivityRepository(app.DB)

	rulesRepo := mongoRepo.NewRulesRepository(app.Mongo)
	if err := rulesRepo.SetDefault(); err != nil {
		app.Logger.Error(err)
	}

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Config.BrokerApiKey,
		app.Logger,
	)
	cryptoController := controllers.NewCryptoController(
		app.Config.BrokerSecretKey,
	)
	tgmController := controllers.NewTgmController(
		app.TGM,
		chatId,
	)

	brokerUseCase := usecasees.NewBrokerUseCase(
		clientController,
		cryptoController,
		app.Config.BrokerUrl,
		app.Config.BrokerTimeout,
		app.Logger,
	)

	detectorUseCase := usecasees.NewDetectorUseCase(
		brokerUseCase,
		orderRepo,
		positionRepo,
		app.Config.QtyTolerance,
		app.Config.StuckAfter,
		app.Config.StaleAfter,
		app.Logger,
	)

	policyUseCase := usecasees.NewPolicyUseCase(
		rulesRepo,
		activityRepo,
		app.Logger,
	)

	remediationUseCase := usecasees.NewRemediationUseCase(
		orderRepo,
		positionRepo,
		app.Logger,
	)

	doctorUseCase := usecasees.NewDoctorUseCase(
		detectorUseCase,
		policyUseCase,
		remediationUseCase,
		activityRepo,
		tgmController,
		app.Metrics.Doctor,
		app.Cron,
		app.Config.PassTimeout,
		app.Logger,
	)

	viewsUseCase := usecasees.NewViewsUseCase(
		activityRepo,
		app.Config.ViewWindow,
		app.Logger,
	)

	tgmUseCase := usecasees.NewTgmUseCase(
		doctorUseCase,
		viewsUseCase,
		tgmController,
		app.Logger,
	)

	if once {
		report := doctorUseCase.RunPass(context.Background())
		app.shipReport(report)

		os.Exit(report.ExitCode())
	}

	go tgmUseCase.CommandProcessor()

	if err := doctorUseCase.Monitoring(app.Config.PassInterval, app.shipReport); err != nil {
		app.Logger.Error(err)
	}

	f := fiber.New()

	middleware := apiHttp.NewMiddleware(f)
	middleware.UseMetrics()

	apiHttp.RegisterHTTPEndpoints(f, doctorUseCase, viewsUseCase, app.Logger)

	if err := f.Listen(fmt.Sprintf(":%s", app.Config.HTTPPort)); err != nil {
		app.Logger.Fatal(err)
	}
}

func (a *App) shipReport(report *structs.PassReport) {
	if a.PromTail == nil {
		return
	}

	a.PromTail.Logf(promtail.Info,
		"pass %s status=%s issues=%d critical=%d warning=%d fixed=%d escalated=%d",
		report.SessionID,
		report.Status,
		report.IssuesFound,
		report.Critical,
		report.Warning,
		report.AutoFixed,
		report.Escalated,
	)
}
