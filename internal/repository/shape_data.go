package repository

import "github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"

// correctShapes may be the answer to a question.
var correctShapes = []string{
	"Cylinder",
}

// distractorShapes are only ever offered as wrong answers.
var distractorShapes = []string{
	"Circle", "Cone", "Cube", "Parallel piped", "Hexagon", "Octagon",
	"Oval", "Pentagon", "Prism", "Pyramid", "Rectangle",
	"Semicircle", "Sphere", "Square", "Triangle",
}

var marathiNames = map[string]string{
	"Triangle":       "त्रिकोण",
	"Square":         "चौरस",
	"Rectangle":      "आयत",
	"Circle":         "वर्तुळ",
	"Semicircle":     "अर्धवर्तुळ",
	"Pentagon":       "पंचकोन",
	"Hexagon":        "षटकोन",
	"Octagon":        "अष्टकोन",
	"Oval":           "अंडाकार",
	"Cube":           "घन",
	"Parallel piped": "इष्टिकाचिती",
	"Sphere":         "गोल",
	"Cylinder":       "दंडगोल किंवा वृत्तचिती",
	"Cone":           "शंकू",
	"Prism":          "प्रिझम",
	"Pyramid":        "पिरॅमिड",
}

var cylinderGraphics = [entities.GraphicVariantCount]string{
	entities.VariantStandard: `<svg width="200" height="240" viewBox="0 0 200 240" xmlns="http://www.w3.org/2000/svg"><ellipse cx="100" cy="180" rx="70" ry="20" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><path d="M30 180 V40 C30 30, 170 30, 170 40 V180" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><ellipse cx="100" cy="40" rx="70" ry="20" fill="#a3d5f7" stroke="#225588" stroke-width="2"/></svg>`,
	entities.VariantTall:     `<svg width="200" height="280" viewBox="0 0 200 280" xmlns="http://www.w3.org/2000/svg"><ellipse cx="100" cy="240" rx="60" ry="18" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><path d="M40 240 V30 C40 22, 160 22, 160 30 V240" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><ellipse cx="100" cy="30" rx="60" ry="18" fill="#a3d5f7" stroke="#225588" stroke-width="2"/></svg>`,
	entities.VariantWide:     `<svg width="220" height="200" viewBox="0 0 220 200" xmlns="http://www.w3.org/2000/svg"><ellipse cx="110" cy="160" rx="85" ry="22" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><path d="M25 160 V50 C25 40, 195 40, 195 50 V160" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><ellipse cx="110" cy="50" rx="85" ry="22" fill="#a3d5f7" stroke="#225588" stroke-width="2"/></svg>`,
	entities.VariantShort:    `<svg width="200" height="180" viewBox="0 0 200 180" xmlns="http://www.w3.org/2000/svg"><ellipse cx="100" cy="140" rx="70" ry="20" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><path d="M30 140 V60 C30 50, 170 50, 170 60 V140" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><ellipse cx="100" cy="60" rx="70" ry="20" fill="#a3d5f7" stroke="#225588" stroke-width="2"/></svg>`,
	entities.VariantNarrow:   `<svg width="180" height="240" viewBox="0 0 180 240" xmlns="http://www.w3.org/2000/svg"><ellipse cx="90" cy="200" rx="50" ry="15" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><path d="M40 200 V45 C40 37, 140 37, 140 45 V200" fill="#a3d5f7" stroke="#225588" stroke-width="2"/><ellipse cx="90" cy="45" rx="50" ry="15" fill="#a3d5f7" stroke="#225588" stroke-width="2"/></svg>`,
}

const cylinderSolution = "Ans : Cylinder.<br>" +
	"The shape of the object shown in the picture is called as <b>Cylinder.</b><br>" +
	"One of the surface is curved.<br>" +
	"Top and bottom surfaces are flat, equal and circular.<br>" +
	"It has two edges and both the edges are circular in shape.<br>" +
	"This does not have any corner.<br>" +
	"Steel container, Cold drink Can, Drum are some examples of the cylinder shape objects.<br>" +
	"Hence, shape of the given geometric object is called as <b>Cylinder</b> is the answer.<br>" +
	"#उत्तर : दंडगोल किंवा वृत्तचिती.<br>" +
	"चित्रात दाखविलेल्या वस्तूच्या आकाराला <b>दंडगोल किंवा वृत्तचिती</b> असे म्हणतात.<br>" +
	"याचे, तळाचा आणि वरचा असे दोन्ही पृष्ठभाग वर्तुळाकार, सपाट आणि समान असतात. <br>" +
	"याला दोन कडा असतात आणि दोन्ही वर्तुळाकार असतात.<br>" +
	"अशा आकाराला एकही कोपरा नसतो.<br>" +
	"पिंप, थंड पेयाचा डबा, ढोल इत्यादी वस्तूंचा आकार दंडगोलाकृती असतो.<br>" +
	"म्हणून, या भौमितिक आकाराचे नाव <b>दंडगोल किंवा वृत्तचिती</b> असे आहे.<br>"

var solutions = map[string]string{
	"Cylinder": cylinderSolution,
}
