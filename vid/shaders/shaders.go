// Package shaders embeds the GLSL sources used to present the display
// texture and compiles them on demand.
//
// All fragment shaders share the single vertex stage, so shader names
// enumerate the embedded *.frag files only.
package shaders

import (
	"embed"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

//go:embed *.vert *.frag
var dir embed.FS

const DefaultName = "Passthrough"

// Names returns the names (without extension) of the embedded fragment
// shaders, sorted.
func Names() []string {
	dirents, err := dir.ReadDir(".")
	if err != nil {
		panic(err)
	}

	var names []string
	for _, dirent := range dirents {
		if name, ok := strings.CutSuffix(dirent.Name(), ".frag"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func readAll(path string) ([]byte, error) {
	f, err := dir.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CompileVertex compiles the shared vertex stage.
func CompileVertex() (uint32, error) {
	return compile(DefaultName+".vert", gl.VERTEX_SHADER)
}

// CompileFragment compiles the named embedded fragment shader.
func CompileFragment(name string) (uint32, error) {
	return compile(name+".frag", gl.FRAGMENT_SHADER)
}

func compile(path string, glType uint32) (uint32, error) {
	buf, err := readAll(path)
	if err != nil {
		return 0, err
	}
	csrc, free := gl.Strs(string(buf) + "\x00")
	sh := gl.CreateShader(glType)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	if gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status); status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)

		glLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(sh, logLength, nil, &glLog[0])
		return 0, fmt.Errorf("shader compile error in %s: %s", path, glLog)
	}
	return sh, nil
}

// LinkProgram links the two stages into a program and deletes them.
func LinkProgram(vert, frag uint32) (uint32, error) {
	prg := gl.CreateProgram()
	gl.AttachShader(prg, vert)
	gl.AttachShader(prg, frag)
	gl.LinkProgram(prg)

	var status int32
	if gl.GetProgramiv(prg, gl.LINK_STATUS, &status); status == gl.FALSE {
		var logLength int32
		var glLog [256]byte
		gl.GetProgramInfoLog(prg, int32(len(glLog)), &logLength, &glLog[0])
		return 0, fmt.Errorf("shader program link error: %s", glLog[:logLength])
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	return prg, nil
}
