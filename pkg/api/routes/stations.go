package routes

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/rmvtransport/pkg/dataaggregator"
	"github.com/travigo/rmvtransport/pkg/dataaggregator/query"
	"github.com/travigo/rmvtransport/pkg/rmv"
	"github.com/travigo/rmvtransport/pkg/util"
)

func StationsRouter(router fiber.Router) {
	router.Get("/", searchStations)
	router.Get("/:identifier/departures", getStationDepartures)
}

func queryCount(c *fiber.Ctx) (int, error) {
	countString := c.Query("count")
	if countString == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(countString)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: count must be a positive number", rmv.InvalidArgumentError)
	}

	return count, nil
}

func searchStations(c *fiber.Ctx) error {
	count, err := queryCount(c)
	if err != nil {
		return sendError(c, err)
	}

	stations, err := dataaggregator.Lookup[[]rmv.StationSuggestion](query.StationSearch{
		Name:  c.Query("name"),
		Count: count,
	})
	if err != nil {
		return sendError(c, err)
	}

	stationsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stations)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce stations",
		})
	}

	return c.JSON(stationsReduced)
}

func getStationDepartures(c *fiber.Ctx) error {
	count, err := queryCount(c)
	if err != nil {
		return sendError(c, err)
	}

	departureBoard, err := dataaggregator.Lookup[*rmv.DepartureBoard](query.DepartureBoard{
		StationID:   c.Params("identifier"),
		DirectionID: c.Query("direction"),
		Count:       count,
		Products:    util.SplitList(c.Query("products")),
	})
	if err != nil {
		return sendError(c, err)
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = []string{"detailed"}
	}

	departureBoardReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, departureBoard)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce departureBoard",
		})
	}

	return c.JSON(departureBoardReduced)
}
