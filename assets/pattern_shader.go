//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float

// Keep in sync with the pattern functions in pattern.go.

func random(st vec2) float {
	return fract(sin(dot(st, vec2(12.9898, 78.233))) * 43758.5453123)
}

func angleOf(uv vec2) float {
	if uv.x == 0 && uv.y == 0 {
		return 0
	}
	return atan2(uv.y, uv.x)
}

func pattern(rawUV vec2, uv vec2, stage float, time float) vec3 {
	if stage < 1 {
		pattern := abs(sin(uv.x*10+time) * cos(uv.y*10+time))
		r := 0.5 + 0.5*sin(time+uv.x+uv.y+pattern)
		g := 0.5 + 0.5*cos(time+2+uv.x+uv.y+pattern)
		b := 0.5 + 0.5*sin(time+4+uv.x+uv.y-pattern)
		grid := mod(rawUV*5000, 1.5)
		line := smoothstep(0.98, 1, grid.x) * smoothstep(0.98, 1, grid.y)
		glow := smoothstep(0.2, 0, length(uv-vec2(sin(time*0.1), cos(time*0.15))))
		return vec3(r, g, b) * line * (0.7 + 0.3*glow)
	} else if stage < 2 {
		radius := length(uv)
		angle := angleOf(uv)
		return vec3(abs(sin(10*angle+time) * cos(10*radius+time)))
	} else if stage < 3 {
		gridUV := floor(uv*10) / 10
		checker := mod(floor(gridUV.x)+floor(gridUV.y), 2)
		return mix(vec3(1), vec3(0), checker)
	} else if stage < 4 {
		return vec3(length(uv))
	} else if stage < 5 {
		uv.x += sin(uv.y*10+time) * 0.1
		uv.y += cos(uv.x*10+time) * 0.1
		return vec3(uv.x, uv.y, 1-uv.x*uv.y)
	} else if stage < 6 {
		radius := length(uv)
		return vec3(sin(radius*10-time), cos(radius*10-time), sin(radius*5-time))
	} else if stage < 7 {
		return vec3(random(uv + time))
	} else if stage < 8 {
		return vec3(smoothstep(0.45, 0.55, abs(sin(uv.x*20+time))))
	} else if stage < 9 {
		return vec3(smoothstep(0.45, 0.55, abs(sin(uv.y*20+time))))
	} else if stage < 10 {
		return vec3(abs(sin((uv.x+uv.y)*20 + time)))
	} else if stage < 11 {
		return vec3(mod(floor(uv.x*10)+floor(uv.y*10), 2))
	} else if stage < 12 {
		return vec3(sin(angleOf(uv)*10 + length(uv)*10 - time))
	} else if stage < 13 {
		return vec3(sin(angleOf(uv)*10 - time))
	} else if stage < 14 {
		zoom := length(uv) * 10
		return vec3(sin(zoom-time), cos(zoom-time), sin(zoom*0.5-time))
	} else if stage < 15 {
		return vec3(sin(uv.x*10+time) * sin(uv.y*10+time))
	} else if stage < 16 {
		grid := mod(uv*10+vec2(sin(time), cos(time)), 1)
		return vec3(smoothstep(0.45, 0.55, grid.x) * smoothstep(0.45, 0.55, grid.y))
	} else if stage < 17 {
		grid := mod(uv*10, 1)
		dist := length(grid - 0.5)
		return vec3(smoothstep(0.1, 0.15, dist*sin(time)))
	} else if stage < 18 {
		return vec3(sin(angleOf(uv)*6+time) * cos(length(uv)*10))
	} else if stage < 19 {
		return vec3(sin(uv.x*10+time) + sin(uv.y*10+time))
	} else if stage < 20 {
		return vec3(random(uv + time))
	} else if stage < 21 {
		return vec3(sin(angleOf(uv)*10 + length(uv)*5 - time))
	} else if stage < 22 {
		return vec3(mod(uv.x+uv.y, 0.5) * 2)
	}

	grid := mod(uv*10+vec2(sin(time), cos(time)), 1)
	return vec3(smoothstep(0.45, 0.55, abs(grid.x-grid.y)))
}

// srcPos carries the plane uv in [0, 1], v goes up.
func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := srcPos*2 - 1
	px := 0.01
	uv = px * floor(uv/px)

	stage := mod(Time/10, 23)

	c := pattern(srcPos, uv, stage, Time)

	// premultiplied alpha
	return vec4(c*0.5, 0.5)
}
