package validation

import (
	"sync"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagTrustEvent  = "trust_event"
	TagPointReason = "point_reason"
	TagRoomID      = "room_id"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom binding tags on gin's validator engine.
// Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errs.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

func RegisterOn(v *validator.Validate) error {
	validators := map[string]validator.Func{
		TagTrustEvent:  trustEvent,
		TagPointReason: pointReason,
		TagRoomID:      roomID,
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrap(err, "register validation "+tag)
		}
	}
	return nil
}

func trustEvent(fl validator.FieldLevel) bool {
	_, err := trust.ParseEvent(fl.Field().String())
	return err == nil
}

func pointReason(fl validator.FieldLevel) bool {
	return point.IsKnown(fl.Field().String())
}

func roomID(fl validator.FieldLevel) bool {
	_, err := reservation.NewRoomID(fl.Field().String())
	return err == nil
}
