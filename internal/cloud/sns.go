package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"
)

// SNSClient publishes maintenance notifications.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
	ctx      context.Context
}

func NewSNSClient(region, topicArn string) (*SNSClient, error) {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
		ctx:      ctx,
	}, nil
}

// SendAlert publishes one notification to the configured topic.
func (c *SNSClient) SendAlert(subject, message string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	result, err := c.svc.Publish(c.ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}

	log.Info().Str("message_id", aws.ToString(result.MessageId)).Msg("alert sent")
	return nil
}

// SendMaintenanceAlert notifies about equipment that needs attention.
func (c *SNSClient) SendMaintenanceAlert(equipmentID string, healthScore float64, predictedDate time.Time) error {
	subject := "Predictive Maintenance Alert"
	message := fmt.Sprintf(
		"Equipment Maintenance Required\n\n"+
			"Equipment ID: %s\n"+
			"Current Health Score: %.2f%%\n"+
			"Predicted Maintenance Date: %s\n\n"+
			"Please schedule maintenance to prevent failures.",
		equipmentID,
		healthScore,
		predictedDate.Format("2006-01-02"),
	)

	return c.SendAlert(subject, message)
}
