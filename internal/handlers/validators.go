package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
)

// RegisterCustomValidators attaches the domain enum validators to gin's
// request binding engine. Call once at startup before serving.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("assetstatus", func(fl validator.FieldLevel) bool {
		return domain.AssetStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("depreciationmethod", func(fl validator.FieldLevel) bool {
		return domain.DepreciationMethod(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("maintenancetype", func(fl validator.FieldLevel) bool {
		return domain.MaintenanceType(fl.Field().String()).IsValid()
	})
}
