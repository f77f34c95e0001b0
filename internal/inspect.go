package internal

import (
	"fmt"
	"guild-warden/domain"
	"guild-warden/repositories"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// RenderTables writes the requested tables as plain-text tables.
// No table means both of them.
func RenderTables(w io.Writer, store repositories.IRecordStore, tables ...repositories.Table) error {
	if len(tables) == 0 {
		tables = []repositories.Table{repositories.StatsTable, repositories.ConfigTable}
	}
	for _, table := range tables {
		var err error
		switch table {
		case repositories.StatsTable:
			err = renderStats(w, store)
		case repositories.ConfigTable:
			err = renderConfigs(w, store)
		default:
			err = fmt.Errorf("unknown table %q", table)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func renderStats(w io.Writer, store repositories.IRecordStore) error {
	stats, err := store.ListStats()
	if err != nil {
		return fmt.Errorf("list stats: %w", err)
	}
	rows := lo.Map(stats, func(s domain.TenantStats, _ int) []string {
		return []string{
			string(repositories.Key(repositories.StatsTable, s.TenantID)),
			string(s.TenantID),
			strconv.FormatUint(s.TodayMessageCount, 10),
			strconv.FormatUint(s.TodayJoinCount, 10),
			string(s.LastResetDate),
		}
	})
	render(w, repositories.StatsTable, []string{"Key", "Tenant", "Messages", "Joins", "Last Reset"}, rows)
	return nil
}

func renderConfigs(w io.Writer, store repositories.IRecordStore) error {
	configs, err := store.ListConfigs()
	if err != nil {
		return fmt.Errorf("list configs: %w", err)
	}
	rows := lo.Map(configs, func(c domain.TenantConfig, _ int) []string {
		return []string{
			string(repositories.Key(repositories.ConfigTable, c.TenantID)),
			string(c.TenantID),
			lo.Ternary(c.HasAuditChannel(), c.AuditChannelID, "-"),
		}
	})
	render(w, repositories.ConfigTable, []string{"Key", "Tenant", "Audit Channel"}, rows)
	return nil
}

func render(w io.Writer, table repositories.Table, header []string, rows [][]string) {
	_, _ = fmt.Fprintf(w, "== %s (%d) ==\n", table, len(rows))
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(false)
	tw.SetBorder(false)
	tw.SetTablePadding("\t")
	tw.AppendBulk(rows)
	tw.Render()
}
