package roibox

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidParam = errors.New("invalid custom_recognition_param")

// Param is the custom_recognition_param of a RoiBox node.
//
//	{
//	    "node": "DetectNode",
//	    "roi": [100, 100, 500, 400],
//	    "mode": "center",
//	    "override": {"DetectNode": {"threshold": 0.6}}
//	}
type Param struct {
	Node     string         `json:"node"`
	Roi      Rect           `json:"roi"`
	Mode     string         `json:"mode"`
	Override map[string]any `json:"override,omitempty"`
}

// ParseParam decodes raw into a Param. The host may hand the param over as
// a JSON object or as a JSON string wrapping one; both are accepted. Roi
// defaults to the zero rectangle and Mode to "" (center) when absent.
func ParseParam(raw string) (Param, error) {
	var p Param

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return p, nil
	}

	err := json.Unmarshal([]byte(raw), &p)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, ErrInvalidROI) {
		return Param{}, err
	}

	var s string
	if err2 := json.Unmarshal([]byte(raw), &s); err2 != nil {
		return Param{}, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	if strings.TrimSpace(s) == "" {
		return p, nil
	}
	if err3 := json.Unmarshal([]byte(s), &p); err3 != nil {
		if errors.Is(err3, ErrInvalidROI) {
			return Param{}, err3
		}
		return Param{}, fmt.Errorf("%w (inner): %v", ErrInvalidParam, err3)
	}
	return p, nil
}
