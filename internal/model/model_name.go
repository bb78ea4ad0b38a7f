package model

// ModelName is the closed set of models served by /models/{model_name}.
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

// ModelNames lists every ModelName in declaration order.
var ModelNames = []ModelName{ModelAlexNet, ModelResNet, ModelLeNet}

// Valid reports whether m is one of ModelNames.
func (m ModelName) Valid() bool {
	switch m {
	case ModelAlexNet, ModelResNet, ModelLeNet:
		return true
	}
	return false
}
