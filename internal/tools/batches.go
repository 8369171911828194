package tools

import (
	"context"

	"brewfather-mcp/internal/brewfather"
	"brewfather-mcp/internal/format"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type batchInput struct {
	BatchID string `json:"batch_id" jsonschema:"Identifier of the batch, as returned by list_batches"`
}

type readingsInput struct {
	BatchID string `json:"batch_id" jsonschema:"Identifier of the batch, as returned by list_batches"`
	Limit   *int   `json:"limit,omitempty" jsonschema:"Number of most recent readings to show (default 10)"`
}

type updateBatchInput struct {
	BatchID string  `json:"batch_id" jsonschema:"Identifier of the batch to update"`
	Status  *string `json:"status,omitempty" jsonschema:"New status: Planning, Brewing, Fermenting, Conditioning, Completed or Archived"`

	MeasuredMashPh           *float64 `json:"measuredMashPh,omitempty" jsonschema:"Measured mash pH"`
	MeasuredBoilSize         *float64 `json:"measuredBoilSize,omitempty" jsonschema:"Measured pre-boil volume in liters"`
	MeasuredFirstWortGravity *float64 `json:"measuredFirstWortGravity,omitempty" jsonschema:"Measured first wort gravity (SG)"`
	MeasuredPreBoilGravity   *float64 `json:"measuredPreBoilGravity,omitempty" jsonschema:"Measured pre-boil gravity (SG)"`
	MeasuredPostBoilGravity  *float64 `json:"measuredPostBoilGravity,omitempty" jsonschema:"Measured post-boil gravity (SG)"`
	MeasuredKettleSize       *float64 `json:"measuredKettleSize,omitempty" jsonschema:"Measured post-boil kettle volume in liters"`
	MeasuredOg               *float64 `json:"measuredOg,omitempty" jsonschema:"Measured original gravity (SG)"`
	MeasuredFermenterTopUp   *float64 `json:"measuredFermenterTopUp,omitempty" jsonschema:"Water added to the fermenter in liters"`
	MeasuredBatchSize        *float64 `json:"measuredBatchSize,omitempty" jsonschema:"Measured volume in the fermenter in liters"`
	MeasuredFg               *float64 `json:"measuredFg,omitempty" jsonschema:"Measured final gravity (SG)"`
	MeasuredBottlingSize     *float64 `json:"measuredBottlingSize,omitempty" jsonschema:"Measured bottling volume in liters"`
	CarbonationTemp          *float64 `json:"carbonationTemp,omitempty" jsonschema:"Beer temperature at carbonation in Celsius"`
}

// fields collects the values that were provided, keyed by upstream name.
// An empty status counts as not provided.
func (in updateBatchInput) fields() brewfather.BatchUpdate {
	fields := brewfather.BatchUpdate{}
	if in.Status != nil && *in.Status != "" {
		fields["status"] = *in.Status
	}
	measured := []struct {
		key   string
		value *float64
	}{
		{"measuredMashPh", in.MeasuredMashPh},
		{"measuredBoilSize", in.MeasuredBoilSize},
		{"measuredFirstWortGravity", in.MeasuredFirstWortGravity},
		{"measuredPreBoilGravity", in.MeasuredPreBoilGravity},
		{"measuredPostBoilGravity", in.MeasuredPostBoilGravity},
		{"measuredKettleSize", in.MeasuredKettleSize},
		{"measuredOg", in.MeasuredOg},
		{"measuredFermenterTopUp", in.MeasuredFermenterTopUp},
		{"measuredBatchSize", in.MeasuredBatchSize},
		{"measuredFg", in.MeasuredFg},
		{"measuredBottlingSize", in.MeasuredBottlingSize},
		{"carbonationTemp", in.CarbonationTemp},
	}
	for _, m := range measured {
		if m.value != nil {
			fields[m.key] = *m.value
		}
	}
	return fields
}

func byBatchID(in batchInput) string { return in.BatchID }

func (h *Handler) registerBatchTools(srv *mcp.Server) {
	addTool(srv, h, &mcp.Tool{
		Name:        "list_batches",
		Description: "Lists all brew batches.",
		Annotations: readOnly(),
	}, func(ctx context.Context, _ noInput) (string, error) {
		batches, err := h.client.ListBatches(ctx, &brewfather.ListQuery{Limit: 50})
		if err != nil {
			return "", err
		}
		return format.BatchList(batches), nil
	})

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_batch_detail",
		Description: "Get detailed information for a specific batch.",
	}, byBatchID, h.client.Batch, format.Batch)

	addTool(srv, h, &mcp.Tool{
		Name:        "update_batch",
		Description: "Updates a batch's status or measured values. Only the provided fields are changed.",
		Annotations: write(),
	}, h.updateBatch)

	addTool(srv, h, &mcp.Tool{
		Name:        "get_batch_brewtracker",
		Description: "Get detailed brewing process guidance and timeline for a batch",
		Annotations: readOnly(),
	}, func(ctx context.Context, in batchInput) (string, error) {
		tracker, err := h.client.BatchBrewTracker(ctx, in.BatchID)
		if err != nil {
			return "", err
		}
		return format.BrewTracker(in.BatchID, tracker), nil
	})

	detailTool(srv, h, &mcp.Tool{
		Name:        "get_batch_last_reading",
		Description: "Get the most recent sensor reading from brewing devices for a batch",
	}, byBatchID, h.client.BatchLastReading, format.LastReading)

	addTool(srv, h, &mcp.Tool{
		Name:        "get_batch_readings_summary",
		Description: "Get a summary of recent sensor readings for a batch (limited to avoid large responses)",
		Annotations: readOnly(),
	}, func(ctx context.Context, in readingsInput) (string, error) {
		readings, err := h.client.BatchReadings(ctx, in.BatchID)
		if err != nil {
			return "", err
		}
		limit := format.DefaultReadingsLimit
		if in.Limit != nil {
			limit = *in.Limit
		}
		return format.ReadingsSummary(readings, limit), nil
	})
}

func (h *Handler) updateBatch(ctx context.Context, in updateBatchInput) (string, error) {
	fields := in.fields()
	if len(fields) == 0 {
		return "No update parameters provided.", nil
	}
	if err := h.client.UpdateBatch(ctx, in.BatchID, fields); err != nil {
		return "", err
	}
	h.log.Info().Str("batch", in.BatchID).Int("fields", len(fields)).Msg("Batch updated")
	return format.BatchUpdated(in.BatchID, fields), nil
}
