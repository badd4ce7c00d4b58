// utils/firebase.go
package utils

import (
	"context"

	"salonify/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client. Push is
// disabled, not fatal, when no credentials are configured.
func FirebaseInit() {
	logger := GetLogger()
	path := config.AppConfig.FirebaseCredentialsFile
	if path == "" {
		logger.Info("firebase: no credentials configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(path))
	if err != nil {
		logger.Error("firebase: error initializing app", zap.Error(err))
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Error("firebase: error getting Messaging client", zap.Error(err))
		return
	}

	FCMClient = client
}
