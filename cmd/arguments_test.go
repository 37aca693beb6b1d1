// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []QArg
	}{
		{
			in:     `set r_planet_texture earth.png`,
			wantF:  `set r_planet_texture earth.png`,
			wantAS: `r_planet_texture earth.png`,
			wantA:  []QArg{{"set"}, {"r_planet_texture"}, {"earth.png"}},
		},
		{
			in:     `planet moon "textures/moon map.png" 0.27`,
			wantF:  `planet moon "textures/moon map.png" 0.27`,
			wantAS: `moon "textures/moon map.png" 0.27`,
			wantA:  []QArg{{"planet"}, {"moon"}, {"textures/moon map.png"}, {"0.27"}},
		},
		{
			in:     ` toggle  r_wireframe // show the mesh`,
			wantF:  `toggle  r_wireframe // show the mesh`,
			wantAS: `r_wireframe // show the mesh`,
			wantA:  []QArg{{"toggle"}, {"r_wireframe"}},
		},
		{
			in:     `// only a comment`,
			wantF:  `// only a comment`,
			wantAS: ``,
			wantA:  []QArg{},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestQArg(t *testing.T) {
	if v := NewArg("36").Int(); v != 36 {
		t.Errorf("Int()=%v, want 36", v)
	}
	if v := NewArg("0.25").Float32(); v != 0.25 {
		t.Errorf("Float32()=%v, want 0.25", v)
	}
	if v := NewArg("x").Float64(); v != 0 {
		t.Errorf("Float64()=%v, want 0", v)
	}
	if !NewArg("on").Bool() || NewArg("0").Bool() {
		t.Errorf("Bool() broken")
	}
}

func TestCommands(t *testing.T) {
	c := New()
	called := 0
	if err := c.Add("Screenshot", func(a Arguments) error {
		called++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := c.Add("screenshot", nil); err == nil {
		t.Errorf("adding a command twice succeeded")
	}
	if !c.Exists("SCREENSHOT") {
		t.Errorf("Exists is not case insensitive")
	}
	ok, err := c.Execute(Parse("screenshot shot.png"))
	if !ok || err != nil || called != 1 {
		t.Errorf("Execute=%v,%v called %d times", ok, err, called)
	}
	ok, err = c.Execute(Parse("unknown"))
	if ok || err != nil {
		t.Errorf("Execute(unknown)=%v,%v", ok, err)
	}
	if l := c.List(); len(l) != 1 || l[0] != "screenshot" {
		t.Errorf("List()=%v", l)
	}
}
