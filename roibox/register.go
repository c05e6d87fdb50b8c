package roibox

import "github.com/MaaXYZ/maa-framework-go/v3"

// Name is the custom_recognition name pipelines refer to.
const Name = "RoiBox"

// Recognitions lists the custom recognitions this package provides.
func Recognitions() map[string]maa.CustomRecognitionRunner {
	return map[string]maa.CustomRecognitionRunner{
		Name: &RoiBox{},
	}
}

func Register() {
	for name, runner := range Recognitions() {
		maa.AgentServerRegisterCustomRecognition(name, runner)
	}
}
