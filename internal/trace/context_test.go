/*
Copyright The EpiData Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package trace

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWithLoggerLevel(t *testing.T) {
	ctx, logger := WithLoggerLevel(context.Background(), logrus.DebugLevel)
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("expected a logrus entry, got %T", logger)
	}
	if got := entry.Logger.GetLevel(); got != logrus.DebugLevel {
		t.Errorf("expected level %v, got %v", logrus.DebugLevel, got)
	}
	if got := Logger(ctx); got != logger {
		t.Error("expected Logger to return the attached entry")
	}
}

func TestLoggerFallback(t *testing.T) {
	if got := Logger(context.Background()); got != logrus.StandardLogger() {
		t.Errorf("expected the standard logger, got %T", got)
	}
}
