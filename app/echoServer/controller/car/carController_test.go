package car

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/shashank1027/car-rental-system/model"
)

type svcMock struct {
	addFn func(ctx context.Context, carModel, licensePlate string) (int64, error)
}

func (m *svcMock) List(ctx context.Context) ([]model.Car, error)          { return nil, nil }
func (m *svcMock) Detail(ctx context.Context, id int64) (*model.Car, error) { return nil, nil }
func (m *svcMock) Delete(ctx context.Context, id int64) error             { return nil }
func (m *svcMock) MarkUnavailable(ctx context.Context, id int64) (*model.Car, error) {
	return nil, nil
}

func (m *svcMock) Add(ctx context.Context, carModel, licensePlate string) (int64, error) {
	if m.addFn == nil {
		return 1, nil
	}
	return m.addFn(ctx, carModel, licensePlate)
}

func newAddContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/cars", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdd_ValidationErrorNamesTheFailingField(t *testing.T) {
	h := &Controller{Svc: &svcMock{}, V: validator.New(), Log: slog.Default()}
	c, rec := newAddContext(`{"model": "Swift"}`)

	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "LicensePlate")
	require.NotContains(t, rec.Body.String(), "Model")
}

func TestAdd_Success(t *testing.T) {
	var gotModel, gotPlate string
	h := &Controller{
		Svc: &svcMock{addFn: func(ctx context.Context, carModel, licensePlate string) (int64, error) {
			gotModel, gotPlate = carModel, licensePlate
			return 9, nil
		}},
		V:   validator.New(),
		Log: slog.Default(),
	}
	c, rec := newAddContext(`{"model": "Swift", "license_plate": "KA-01-AB-1234"}`)

	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Swift", gotModel)
	require.Equal(t, "KA-01-AB-1234", gotPlate)
}
