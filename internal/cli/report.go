package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/repository"
	"github.com/time-manager-api/internal/service"
)

// Группировки отчёта
const (
	reportByProject  = "project"
	reportByCustomer = "customer"
)

type reportOptions struct {
	by       string
	from     string
	to       string
	billable *bool
}

func newReportCommand() *cobra.Command {
	var opts reportOptions
	var billable bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print hours grouped by project or customer",
		Long: `Print the sum of tracked hours grouped by project or customer.

Examples:
  api report --by project
  api report --by customer --from 2024-01-01 --to 2024-01-31
  api report --by project --billable=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("billable") {
				opts.billable = &billable
			}

			filter, err := opts.filter()
			if err != nil {
				return err
			}

			a, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			return runReport(cmd.Context(), a.store, cmd.OutOrStdout(), opts.by, filter)
		},
	}

	cmd.Flags().StringVar(&opts.by, "by", reportByProject, "grouping: project or customer")
	cmd.Flags().StringVar(&opts.from, "from", "", "first work date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.to, "to", "", "last work date, YYYY-MM-DD")
	cmd.Flags().BoolVar(&billable, "billable", false, "only billable (true) or non-billable (false) entries")

	return cmd
}

// filter проверяет флаги и строит фильтр отчёта
func (o reportOptions) filter() (domain.ReportFilter, error) {
	if o.by != reportByProject && o.by != reportByCustomer {
		return domain.ReportFilter{}, fmt.Errorf("--by must be %q or %q, got %q", reportByProject, reportByCustomer, o.by)
	}

	from, err := optionalDate(o.from)
	if err != nil {
		return domain.ReportFilter{}, fmt.Errorf("--from: %w", err)
	}
	to, err := optionalDate(o.to)
	if err != nil {
		return domain.ReportFilter{}, fmt.Errorf("--to: %w", err)
	}

	return domain.ReportFilter{
		Dates:    domain.DateRange{From: from, To: to},
		Billable: o.billable,
	}, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := dto.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// runReport строит отчёт и печатает его таблицей
func runReport(ctx context.Context, store repository.Store, out io.Writer, by string, filter domain.ReportFilter) error {
	svc := service.NewReportService(store)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	switch by {
	case reportByCustomer:
		rows, err := svc.ByCustomer(ctx, filter)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "CUSTOMER ID\tCUSTOMER\tHOURS")
		for _, row := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%.2f\n", row.CustomerID, row.CustomerName, row.Hours)
		}
	default:
		rows, err := svc.ByProject(ctx, filter)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "PROJECT ID\tPROJECT\tCUSTOMER\tHOURS")
		for _, row := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n", row.ProjectID, row.ProjectName, row.CustomerName, row.Hours)
		}
	}

	return tw.Flush()
}
