package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type ConfigSchema struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Auth struct {
		OTPLength             int `yaml:"otp_length"`
		ResendCooldownSeconds int `yaml:"resend_cooldown_seconds"`
	} `yaml:"auth"`
	UI struct {
		MobileBreakpoint int `yaml:"mobile_breakpoint"`
	} `yaml:"ui"`
}

var AppConfig ConfigSchema

func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, &AppConfig)
	if err != nil {
		return err
	}
	applyDefaults()
	return nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func applyDefaults() {
	if AppConfig.API.TimeoutSeconds <= 0 {
		AppConfig.API.TimeoutSeconds = 10
	}
	if AppConfig.Auth.OTPLength <= 0 {
		AppConfig.Auth.OTPLength = 4
	}
	if AppConfig.Auth.ResendCooldownSeconds <= 0 {
		AppConfig.Auth.ResendCooldownSeconds = 30
	}
	if AppConfig.UI.MobileBreakpoint <= 0 {
		AppConfig.UI.MobileBreakpoint = 768
	}
}
