/*
   Copyright 2025 The DIRPX Authors

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

package config

import (
	"testing"

	"dirpx.dev/fallible"
	"dirpx.dev/fallible/kind"
	"dirpx.dev/fallible/storage"
	"dirpx.dev/fallible/storage/testkit"
)

func TestParse_AllFields(t *testing.T) {
	got, err := Parse("debug=true\nport=3000\nhost=0.0.0.0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{Debug: true, Port: 3000, Host: "0.0.0.0"}
	if got != want {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_EmptyYieldsDefaults(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != Defaults() {
		t.Fatalf("Parse(\"\") = %+v, want defaults %+v", got, Defaults())
	}
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	text := "garbage line\n" + // no separator
		"a=b=c\n" + // two separators
		"=\n" + // bare separator still splits in two
		"port=9090\n"
	got, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Port != 9090 {
		t.Fatalf("Port = %d, want 9090", got.Port)
	}
	if got.Debug != DefaultDebug || got.Host != DefaultHost {
		t.Fatalf("untouched fields must keep defaults, got %+v", got)
	}
}

func TestParse_TrimsKeyAndValue(t *testing.T) {
	got, err := Parse("  host  =  example.org  \n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Host != "example.org" {
		t.Fatalf("Host = %q, want %q", got.Host, "example.org")
	}
}

func TestParse_DebugDegradesSoftly(t *testing.T) {
	got, err := Parse("debug=notabool\nport=3000")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{Debug: false, Port: 3000, Host: DefaultHost}
	if got != want {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_PortFailsHard(t *testing.T) {
	_, err := Parse("port=notanumber")
	if !fallible.IsKind(err, kind.Parse) {
		t.Fatalf("want kind.Parse, got %v", err)
	}
}

func TestParse_PortOutOfRangeFailsHard(t *testing.T) {
	_, err := Parse("port=70000")
	if !fallible.IsKind(err, kind.Parse) {
		t.Fatalf("want kind.Parse for out-of-range port, got %v", err)
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	got, err := Parse("color=blue\nhost=web")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Host != "web" {
		t.Fatalf("Host = %q, want %q", got.Host, "web")
	}
}

func TestParse_LastOccurrenceWins(t *testing.T) {
	got, err := Parse("host=first\nhost=second")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Host != "second" {
		t.Fatalf("Host = %q, want %q", got.Host, "second")
	}
}

func TestRenderParse_RoundTrip(t *testing.T) {
	in := Config{Debug: true, Port: 443, Host: "svc.internal"}
	out, err := Parse(Render(in))
	if err != nil {
		t.Fatalf("Parse(Render(cfg)): %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestLoad_ReadsThroughStore(t *testing.T) {
	st := testkit.NewStore()
	if err := st.WriteText("app.conf", "debug=1\nport=8443\nhost=edge"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := Load(st, "app.conf")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Debug: true, Port: 8443, Host: "edge"}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_AbsentFileFailsWithIO(t *testing.T) {
	_, err := Load(testkit.NewStore(), "missing.conf")
	if !fallible.IsKind(err, kind.IO) {
		t.Fatalf("want kind.IO, got %v", err)
	}
	if !storage.IsNotFound(err) {
		t.Fatalf("absence must stay detectable: %v", err)
	}
}
