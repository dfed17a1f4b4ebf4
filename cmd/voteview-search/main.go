// cmd/voteview-search/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"voteview-client/internal/common/cache"
	"voteview-client/internal/common/config"
	apierrors "voteview-client/internal/common/errors"
	httpclient "voteview-client/internal/common/http"
	"voteview-client/internal/common/logger"
	"voteview-client/internal/query"
	"voteview-client/internal/search"
	"voteview-client/internal/table"
)

func main() {
	var (
		q          = flag.String("q", "", "free-text query")
		startDate  = flag.String("startdate", "", "start date (YYYY, YYYY-MM or YYYY-MM-DD)")
		endDate    = flag.String("enddate", "", "end date (YYYY, YYYY-MM or YYYY-MM-DD)")
		congress   = flag.String("congress", "", "comma-separated congress numbers")
		chamber    = flag.String("chamber", "", "house or senate")
		minSupport = flag.Float64("min-support", -1, "minimum support percentage")
		maxSupport = flag.Float64("max-support", -1, "maximum support percentage")
		members    = flag.Bool("members", false, "search members instead of roll calls")
		name       = flag.String("name", "", "member name (members mode)")
		state      = flag.String("state", "", "member state (members mode)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	transport := httpclient.NewClient(cfg.Voteview.Timeout())

	var qcache cache.Cache
	if cfg.Cache.Enabled {
		qcache = cache.NewRedis(redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		}), cfg.Cache.TTLDuration())
	}

	client := search.NewClient(cfg.Voteview, transport, qcache, log)
	ctx := context.Background()

	var res *search.Result
	if *members {
		res, err = client.SearchMembers(ctx, search.MemberQuery{
			Name:     *name,
			State:    *state,
			Congress: *congress,
			Chamber:  *chamber,
		})
	} else {
		params := query.Params{
			Query:     *q,
			StartDate: *startDate,
			EndDate:   *endDate,
			Chamber:   *chamber,
		}
		if *congress != "" {
			params.Congress, err = parseCongressList(*congress)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
		if *minSupport >= 0 {
			params.MinSupport = minSupport
		}
		if *maxSupport >= 0 {
			params.MaxSupport = maxSupport
		}
		res, err = client.SearchRollCalls(ctx, params)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}

	printTable(res)
}

func parseCongressList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("congress list %q: %w", s, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func exitCode(err error) int {
	switch apierrors.Code(err) {
	case apierrors.ErrCodeValidationFailed:
		return 2
	case apierrors.ErrCodeEmptyResult, apierrors.ErrCodeEmptyInput:
		return 3
	case apierrors.ErrCodeTransportFailed:
		return 4
	default:
		return 1
	}
}

func printTable(res *search.Result) {
	tbl := res.Table
	cols := tbl.Columns()
	fmt.Println(strings.Join(cols, "\t"))
	for i := 0; i < tbl.NumRows(); i++ {
		cells := make([]string, len(cols))
		for j, name := range cols {
			col, _ := tbl.Column(name)
			if col.Kind == table.ColString {
				cells[j] = col.String(i)
			} else {
				cells[j] = strconv.FormatInt(col.Int(i), 10)
			}
		}
		fmt.Println(strings.Join(cells, "\t"))
	}
	if res.Warning != "" {
		fmt.Fprintln(os.Stderr, "warning:", res.Warning)
	}
}
