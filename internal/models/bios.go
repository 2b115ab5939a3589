package models

type BiosSettings struct {
	FastBoot      bool   `json:"fastBoot"`
	BootOrder     string `json:"bootOrder" example:"hdd"`
	SecurityLevel string `json:"securityLevel" example:"standard"`
}
