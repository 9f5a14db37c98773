package httpapi

import (
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/channingko-madden/weather-data/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/date", func(c *fiber.Ctx) error {
		var req dateQuery
		if err := bind(c, &req); err != nil {
			return err
		}

		ts, ok := weather.DateToUnix(req.Date)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		}

		rec, ok := service.Lookup(ts)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no weather data for date "+req.Date)
		}
		return c.JSON(rec)
	})

	v1.Get("/weather/range", func(c *fiber.Ctx) error {
		var req rangeQuery
		if err := bind(c, &req); err != nil {
			return err
		}

		dates, err := weather.ParseDateRange(req.Range)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records := service.Range(dates)
		if records == nil {
			records = []weather.Record{}
		}
		return c.JSON(records)
	})

	v1.Get("/weather/mean", func(c *fiber.Ctx) error {
		var req meanQuery
		if err := bind(c, &req); err != nil {
			return err
		}

		dates, err := weather.ParseDateRange(req.Range)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		mean := service.Mean(dates, req.Variable)
		if math.IsNaN(mean) {
			return fiber.NewError(fiber.StatusNotFound,
				"no data for variable \""+req.Variable+"\" within the range "+req.Range)
		}
		return c.JSON(fiber.Map{
			"range":    req.Range,
			"variable": req.Variable,
			"mean":     mean,
		})
	})

	v1.Get("/weather/sample-history", func(c *fiber.Ctx) error {
		var req sampleQuery
		if err := bind(c, &req); err != nil {
			return err
		}

		dates, err := weather.ParseDateRange(req.Range)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		years, err := weather.ParseYearRange(req.Years)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records := service.SampleHistory(dates, years)
		if records == nil {
			records = []weather.Record{}
		}
		return c.JSON(records)
	})
}

// bind parses the query string into req and runs struct validation,
// mapping failures to 400 responses.
func bind(c *fiber.Ctx, req any) error {
	if err := c.QueryParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

type dateQuery struct {
	Date string `query:"date" validate:"required,len=10"`
}

type rangeQuery struct {
	Range string `query:"range" validate:"required,len=21"`
}

type meanQuery struct {
	Range    string `query:"range" validate:"required,len=21"`
	Variable string `query:"variable" validate:"required,oneof=tmax tmin tmean ppt"`
}

type sampleQuery struct {
	Range string `query:"range" validate:"required,len=21"`
	Years string `query:"years" validate:"required,len=9"`
}
