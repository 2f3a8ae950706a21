package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
)

// CensusRenderer produces the printable loft census: one row per pigeon
// with its ring, sex, color, line and status.
type CensusRenderer struct{}

func NewCensusRenderer() *CensusRenderer {
	return &CensusRenderer{}
}

func (r *CensusRenderer) Render(loft *domain.Loft, pigeons []*domain.Pigeon) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(8, "Loft census: "+loft.DisplayName(), props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, time.Now().Format("2006-01-02"), props.Text{
			Size:  10,
			Align: align.Right,
			Top:   3,
		}),
	)

	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d pigeons registered", len(pigeons)), props.Text{
			Size: 10,
		}),
	)

	m.AddRow(8,
		text.NewCol(3, "Ring", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Year", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Sex", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Color", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Line", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Status", props.Text{Style: fontstyle.Bold, Size: 9}),
	)

	for _, p := range pigeons {
		m.AddRow(7,
			text.NewCol(3, p.Ring, props.Text{Size: 8}),
			text.NewCol(1, fmt.Sprintf("%d", p.Year), props.Text{Size: 8}),
			text.NewCol(2, p.Sex, props.Text{Size: 8}),
			text.NewCol(2, p.Color, props.Text{Size: 8}),
			text.NewCol(2, p.Line, props.Text{Size: 8}),
			text.NewCol(2, p.Status, props.Text{Size: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate census pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
