package roibox

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

// Recognizer runs a pipeline recognition node against a frame. A nil detail
// means the host could not run the node (unknown name, runtime failure).
type Recognizer interface {
	RunRecognition(node string, img image.Image, override map[string]any) *maa.RecognitionDetail
}

// contextRecognizer forwards to the host context of the current task.
type contextRecognizer struct {
	ctx *maa.Context
}

func (c contextRecognizer) RunRecognition(node string, img image.Image, override map[string]any) *maa.RecognitionDetail {
	if len(override) == 0 {
		return c.ctx.RunRecognition(node, img)
	}
	return c.ctx.RunRecognition(node, img, override)
}

// Detail is the recognition detail reported on a hit.
type Detail struct {
	Box  [4]int `json:"box"`
	Roi  Rect   `json:"roi"`
	Mode Mode   `json:"mode"`
}

// RoiBox runs another recognition node on the full frame and only hits when
// the detected box lies in the configured roi.
type RoiBox struct{}

// Run implements the custom recognition logic
func (r *RoiBox) Run(ctx *maa.Context, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	return r.Analyze(contextRecognizer{ctx: ctx}, arg)
}

// Analyze is Run with the host context abstracted away. Every failure is a
// miss; the reason only goes to the log.
func (r *RoiBox) Analyze(reco Recognizer, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	logger := log.With().
		Str("recognition", arg.CustomRecognitionName).
		Str("task", arg.CurrentTaskName).
		Logger()

	p, err := ParseParam(arg.CustomRecognitionParam)
	if err != nil {
		logger.Warn().Err(err).Str("param", arg.CustomRecognitionParam).Msg("Failed to parse param")
		return nil, false
	}
	if p.Node == "" {
		logger.Warn().Str("param", arg.CustomRecognitionParam).Msg("Missing node in param")
		return nil, false
	}

	mode, err := ParseMode(p.Mode)
	if err != nil {
		logger.Warn().Err(err).Str("node", p.Node).Msg("Invalid mode")
		return nil, false
	}

	img := arg.Img
	if img == nil {
		logger.Warn().Str("node", p.Node).Msg("No image to recognize")
		return nil, false
	}

	roi := p.Roi
	if roi.IsZero() {
		// 默认全屏
		b := img.Bounds()
		roi = FullImage(b.Dx(), b.Dy())
	}

	detail, err := runNode(reco, p.Node, img, p.Override)
	if err != nil {
		logger.Error().Err(err).Str("node", p.Node).Msg("Recognition node failed")
		return nil, false
	}
	if detail == nil {
		logger.Debug().Str("node", p.Node).Msg("Recognition node returned nothing")
		return nil, false
	}
	if !detail.Hit {
		logger.Debug().Str("node", p.Node).Msg("Recognition node missed")
		return nil, false
	}

	box := FromMaa(detail.Box)
	ok, err := Contains(box, roi, mode)
	if err != nil {
		logger.Warn().Err(err).Str("node", p.Node).Msg("Cannot evaluate box against roi")
		return nil, false
	}

	logger.Debug().
		Str("node", p.Node).
		Stringer("box", box).
		Stringer("roi", roi).
		Str("mode", string(mode)).
		Bool("inside", ok).
		Msg("RoiBox evaluated")

	if !ok {
		return nil, false
	}

	detailBytes, err := json.Marshal(Detail{
		Box:  [4]int{detail.Box.X(), detail.Box.Y(), detail.Box.Width(), detail.Box.Height()},
		Roi:  roi,
		Mode: mode,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal detail")
		return nil, false
	}

	return &maa.CustomRecognitionResult{
		Box:    detail.Box,
		Detail: string(detailBytes),
	}, true
}

// runNode calls into the host and turns a panic across the binding into an
// error.
func runNode(reco Recognizer, node string, img image.Image, override map[string]any) (detail *maa.RecognitionDetail, err error) {
	defer func() {
		if v := recover(); v != nil {
			detail, err = nil, fmt.Errorf("run recognition %q: panic: %v", node, v)
		}
	}()
	return reco.RunRecognition(node, img, override), nil
}
