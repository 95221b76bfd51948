// Package charts renders spending charts as PNG images.
package charts

import (
	"bytes"
	"fmt"

	"github.com/moneyjournal/backend/pkg/aggregation"
	"github.com/wcharczuk/go-chart/v2"
)

// Chart size in pixels.
const (
	Width  = 800
	Height = 600
)

// CategoryPie renders the category breakdown as a pie chart.
// It returns nil if there is nothing to draw.
func CategoryPie(breakdown []aggregation.CategoryShare) ([]byte, error) {
	values := make([]chart.Value, 0, len(breakdown))
	for _, share := range breakdown {
		if !share.Total.IsPositive() {
			continue
		}

		value, _ := share.Total.Float64()
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%d%%)", share.Category, share.FormattedTotal, share.Percentage),
			Value: value,
		})
	}

	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  Width,
		Height: Height,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	err := pie.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}

	return buffer.Bytes(), nil
}
