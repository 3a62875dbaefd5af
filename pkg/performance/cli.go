package performance

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/raildelay/raildelay/pkg/config"
	"github.com/raildelay/raildelay/pkg/hsp"
	"github.com/raildelay/raildelay/pkg/raildata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Find delayed trains between two stations on a given day",

		ArgsUsage: "DEPARTURE_STATION DESTINATION_STATION DEPARTURE_HOUR ARRIVAL_HOUR DATE",

		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "threshold",
				Usage: "minimum arrival delay in minutes for a train to count as delayed",
				Value: int(DefaultThreshold.Minutes()),
			},
		},

		Action: func(c *cli.Context) error {
			if c.NArg() != 5 {
				return cli.Exit("Usage: raildelay lookup DEPARTURE_STATION DESTINATION_STATION DEPARTURE_HOUR ARRIVAL_HOUR DATE", 1)
			}

			query, err := parseQuery(c.Args().Slice())
			if err != nil {
				return err
			}

			credentials, err := config.Load()
			if err != nil {
				return err
			}

			log.Info().
				Str("from", query.DepartureStation).
				Str("to", query.DestinationStation).
				Msgf("Querying for trains between the hours of %d:00 and %d:00", query.DepartureHour, query.ArrivalHour)

			threshold := time.Duration(c.Int("threshold")) * time.Minute

			reports, err := Run(hsp.NewClient(credentials), query, threshold)
			if err != nil {
				return err
			}

			fmt.Printf(
				"Found %d delayed trains between %s and %s from %d:00 to %d:00\n",
				len(reports),
				query.DepartureStation, query.DestinationStation,
				query.DepartureHour, query.ArrivalHour,
			)

			for _, report := range reports {
				fmt.Printf(
					"%s from %s to %s was delayed by %d minutes\n",
					report.Departure.ScheduledDeparture,
					report.Departure.Location,
					report.Destination.Location,
					report.DelayMinutes(),
				)
			}

			return nil
		},
	}
}

func parseQuery(args []string) (raildata.Query, error) {
	departureHour, err := strconv.ParseInt(args[2], 10, 8)
	if err != nil {
		return raildata.Query{}, fmt.Errorf("error parsing departure hour: %w", err)
	}

	arrivalHour, err := strconv.ParseInt(args[3], 10, 8)
	if err != nil {
		return raildata.Query{}, fmt.Errorf("error parsing arrival hour: %w", err)
	}

	date, err := time.Parse("2006-01-02", args[4])
	if err != nil {
		return raildata.Query{}, fmt.Errorf("error parsing date: %w", err)
	}

	return raildata.Query{
		DepartureStation:   args[0],
		DestinationStation: args[1],

		DepartureHour: int8(departureHour),
		ArrivalHour:   int8(arrivalHour),

		Date: date,
	}, nil
}
