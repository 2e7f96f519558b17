package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/Pujitha233/restaurant-billing-software/internal/apierror"
	"github.com/Pujitha233/restaurant-billing-software/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, max=100, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string)
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto HTTP statuses. Anything that is not
// a validation or not-found error is handed to the ErrorHandler middleware,
// which logs it and answers 500 without the internal detail.
func respondError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	var nfErr *service.NotFoundError
	switch {
	case errors.As(err, &vErr):
		field := vErr.Field
		if field == "" {
			field = "request"
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{field: vErr.Message}))
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, apierror.New(nfErr.Error()))
	default:
		_ = c.Error(err)
	}
}
