package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashmachine/dashmachine-api/internal/models"
	"github.com/dashmachine/dashmachine-api/internal/services"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func TestVerificationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCodes := services.NewMockVerificationCodeStore(ctrl)
	mockCooldown := services.NewMockCooldownLimiter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewVerificationService(mockCodes, mockCooldown, mockKafka, true)

	var saved string
	mockCooldown.EXPECT().Acquire(gomock.Any(), "+15551234567").Return(true, nil)
	mockCodes.EXPECT().Save(gomock.Any(), "+15551234567", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, code string, _ time.Time) error {
			saved = code
			return nil
		})
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "+15551234567", string(msgs[0].Key))

			var event models.SMSVerificationEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, saved, event.Code)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	code, err := svc.Create(context.Background(), "+15551234567")
	require.NoError(t, err)
	assert.Regexp(t, sixDigits, code)
	assert.Equal(t, saved, code)
}

func TestVerificationService_Create_Cooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCodes := services.NewMockVerificationCodeStore(ctrl)
	mockCooldown := services.NewMockCooldownLimiter(ctrl)
	svc := services.NewVerificationService(mockCodes, mockCooldown, nil, true)

	mockCooldown.EXPECT().Acquire(gomock.Any(), "+15551234567").Return(false, nil)

	_, err := svc.Create(context.Background(), "+15551234567")
	assert.ErrorIs(t, err, services.ErrTooManyRequests)
}

func TestVerificationService_Create_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCodes := services.NewMockVerificationCodeStore(ctrl)
	mockCooldown := services.NewMockCooldownLimiter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewVerificationService(mockCodes, mockCooldown, mockKafka, true)
	ctx := context.Background()

	mockCooldown.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	_, err := svc.Create(ctx, "+15551234567")
	assert.EqualError(t, err, "redis down")

	mockCooldown.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(true, nil)
	mockCodes.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	_, err = svc.Create(ctx, "+15551234567")
	assert.EqualError(t, err, "redis down")

	// A failed dispatch is logged but the code stays issued.
	mockCooldown.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(true, nil)
	mockCodes.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	code, err := svc.Create(ctx, "+15551234567")
	assert.NoError(t, err)
	assert.Regexp(t, sixDigits, code)
}

func TestVerificationService_Create_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCodes := services.NewMockVerificationCodeStore(ctrl)
	mockCooldown := services.NewMockCooldownLimiter(ctrl)
	svc := services.NewVerificationService(mockCodes, mockCooldown, nil, true)

	mockCooldown.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(true, nil)
	mockCodes.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), "+15551234567")
	assert.NoError(t, err)
}

func TestVerificationService_Verify(t *testing.T) {
	tests := []struct {
		name      string
		singleUse bool
		found     bool
		storeErr  error
		want      bool
	}{
		{name: "single use match", singleUse: true, found: true, want: true},
		{name: "single use miss", singleUse: true, found: false, want: false},
		{name: "reusable match", singleUse: false, found: true, want: true},
		{name: "store error", singleUse: true, storeErr: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCodes := services.NewMockVerificationCodeStore(ctrl)
			svc := services.NewVerificationService(mockCodes, nil, nil, tt.singleUse)

			if tt.singleUse {
				mockCodes.EXPECT().Consume(gomock.Any(), "+15551234567", "123456").Return(tt.found, tt.storeErr)
			} else {
				mockCodes.EXPECT().Exists(gomock.Any(), "+15551234567", "123456").Return(tt.found, tt.storeErr)
			}

			ok, err := svc.Verify(context.Background(), "+15551234567", "123456")
			if tt.storeErr != nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
