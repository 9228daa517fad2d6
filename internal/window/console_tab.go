package window

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lumideck/lumideck/internal/rgb"
	"github.com/lumideck/lumideck/internal/vc"
)

// Preview raster size: wide enough for text overlays to stay legible.
const (
	previewCols = 48
	previewRows = 16
)

// ============ CONSOLE TAB ============

func (mw *MainWindow) createConsoleTab() fyne.CanvasObject {
	header := widget.NewLabel("Virtual Console")
	header.TextStyle = fyne.TextStyle{Bold: true}

	mw.matrixList = widget.NewList(
		func() int { return len(mw.matrices) },
		func() fyne.CanvasObject {
			return container.NewGridWithColumns(2, widget.NewLabel(""), widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(mw.matrices) {
				return
			}
			m := mw.matrices[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(m.Caption)
			row.Objects[1].(*widget.Label).SetText(mw.functionLabel(m))
		},
	)
	mw.matrixList.OnSelected = func(id widget.ListItemID) {
		mw.selectedMatrix = id
		mw.refreshPreview()
	}

	mw.preview = newPreviewPane(func() {
		mw.openSelectedProperties()
	})

	addBtn := widget.NewButtonWithIcon("Add Matrix", theme.ContentAddIcon(), func() {
		mw.addMatrix()
	})
	propsBtn := widget.NewButtonWithIcon("Properties...", theme.SettingsIcon(), func() {
		mw.openSelectedProperties()
	})
	toolbar := container.NewHBox(addBtn, propsBtn)

	return container.NewBorder(
		container.NewVBox(header, toolbar, widget.NewSeparator()),
		nil, nil,
		container.NewVBox(widget.NewLabel("Preview"), mw.preview),
		mw.matrixList,
	)
}

func (mw *MainWindow) functionLabel(m *vc.Matrix) string {
	if f := mw.doc.Function(m.Function); f != nil {
		return f.Name
	}
	return vc.NoFunctionText
}

func (mw *MainWindow) addMatrix() {
	var maxID uint32
	for _, m := range mw.matrices {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	m := vc.NewMatrix(maxID + 1)
	mw.matrices = append(mw.matrices, m)
	mw.cfg.StoreMatrix(m)
	if err := mw.cfg.Save(); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	mw.matrixList.Refresh()
}

func (mw *MainWindow) openSelectedProperties() {
	if mw.selectedMatrix < 0 || mw.selectedMatrix >= len(mw.matrices) {
		return
	}
	m := mw.matrices[mw.selectedMatrix]

	vc.ShowMatrixProperties(mw.window, m, mw.doc, func() {
		mw.cfg.StoreMatrix(m)
		if err := mw.cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		mw.matrixList.Refresh()
		mw.refreshPreview()
		if mw.onSave != nil {
			mw.onSave()
		}
	})
}

func (mw *MainWindow) refreshPreview() {
	if mw.selectedMatrix < 0 || mw.selectedMatrix >= len(mw.matrices) {
		return
	}
	mw.preview.render(mw.matrices[mw.selectedMatrix])
}

// ============ PREVIEW PANE ============

// previewPane draws an approximation of a matrix's output: the start/end
// color gradient with any text overlay composited on top. Tapping it opens
// the properties editor.
type previewPane struct {
	widget.BaseWidget
	img   *canvas.Image
	onTap func()
}

func newPreviewPane(onTap func()) *previewPane {
	p := &previewPane{
		img:   canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, previewCols, previewRows))),
		onTap: onTap,
	}
	p.img.FillMode = canvas.ImageFillContain
	p.img.ScaleMode = canvas.ImageScalePixels
	p.img.SetMinSize(fyne.NewSize(240, 80))
	p.ExtendBaseWidget(p)
	return p
}

func (p *previewPane) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.img)
}

func (p *previewPane) Tapped(_ *fyne.PointEvent) {
	if p.onTap != nil {
		p.onTap()
	}
}

func (p *previewPane) TappedSecondary(_ *fyne.PointEvent) {}

func (p *previewPane) render(m *vc.Matrix) {
	start := color.RGBA{A: 255}
	end := color.RGBA{A: 255}
	overlay := ""
	for _, c := range m.CustomControls() {
		switch c.Kind {
		case vc.ControlStartColor:
			start = c.Color
		case vc.ControlEndColor:
			end = c.Color
		case vc.ControlText:
			overlay = c.Resource
		}
	}

	frame := rgb.GradientFrame(start, end, previewCols, previewRows)

	if overlay != "" {
		fontBytes := theme.DefaultTextFont().Content()
		text, err := rgb.RenderText(overlay, color.RGBA{R: 255, G: 255, B: 255, A: 255}, fontBytes)
		if err != nil {
			log.Printf("Failed to render text overlay: %v", err)
		} else {
			draw.Draw(frame, frame.Bounds(), text, image.Point{}, draw.Over)
		}
	}

	p.img.Image = frame
	p.img.Refresh()
}
