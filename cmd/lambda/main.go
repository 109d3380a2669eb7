package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/spf13/viper"

	"github.com/saulo-duarte/quizgen-api/internal/config"
	"github.com/saulo-duarte/quizgen-api/internal/container"
	"github.com/saulo-duarte/quizgen-api/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	ctx := context.Background()
	log := config.Logger()

	settings, err := config.Load(viper.New(), "")
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	c, err := container.New(ctx, settings)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	r := router.New(router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		AllowedOrigins: settings.CORS.AllowedOrigins,
	})
	chiLambda = chiadapter.New(r)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
