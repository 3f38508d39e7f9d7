package main

import (
	"os"
	"time"

	"github.com/robfig/cron"
	"github.com/sirupsen/logrus"

	"github.com/rentloop/rentloop-server/cronJobs"
	"github.com/rentloop/rentloop-server/database"
	"github.com/rentloop/rentloop-server/server"
)

func InitiateCronJobs() error {
	logrus.Infof("initiating cron jobs")

	rentalLifecycle := cron.NewWithLocation(time.Local)
	err := rentalLifecycle.AddFunc("@every 1m", func() {
		cronJobs.ActivateDueRentals()
		cronJobs.CompleteFinishedRentals()
	})
	if err != nil {
		logrus.Errorf("cron job (rental lifecycle) initiation failed %v", err)
		return err
	}
	rentalLifecycle.Start()

	expireUnpaid := cron.New()
	err = expireUnpaid.AddFunc("@hourly", func() {
		cronJobs.ExpireUnpaidRentals()
	})
	if err != nil {
		logrus.Errorf("cron job (expire unpaid rentals) initiation failed %v", err)
		return err
	}
	expireUnpaid.Start()

	logrus.Infof("cron job initiation successful")
	return nil
}

func main() {
	if err := database.ConnectAndMigrate(os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		database.SSLModeDisable); err != nil {
		logrus.Panicf("Failed to initialize and migrate database with error: %+v", err)
	}

	logrus.Print("migration successful!!")
	if err := InitiateCronJobs(); err != nil {
		logrus.Error("error from cron job initiation ", err)
	}

	// create server instance
	srv := server.SetupRoutes()

	logrus.Print("Server started at ", os.Getenv("SERVER_HOST_PORT"))
	if err := srv.Run(":" + os.Getenv("SERVER_HOST_PORT")); err != nil {
		logrus.Panicf("Failed to run server with error: %+v", err)
	}
}
