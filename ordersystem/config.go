/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package ordersystem

import (
	"github.com/caarlos0/env/v11"

	"github.com/tochemey/entities/internal/validation"
	"github.com/tochemey/entities/log"
)

// Config carries the tunables of the order system.
type Config struct {
	// QueueCapacity bounds every runtime's request queue. Callers suspend
	// on send once a queue is full.
	QueueCapacity int `env:"QUEUE_CAPACITY" envDefault:"64"`
	// LogLevel is one of debug, info, warning, error, fatal.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate asserts the configuration is usable.
func (c Config) Validate() error {
	_, levelErr := log.ParseLevel(c.LogLevel)
	return validation.New(validation.FailFast()).
		AddAssertion(c.QueueCapacity > 0, "queue capacity must be greater than zero").
		AddAssertion(levelErr == nil, "log level is not recognized").
		Validate()
}
