package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/binzume/dtsconv/converter"
	"github.com/binzume/dtsconv/dts"
	"github.com/binzume/dtsconv/texture"
)

func defaultOutputFile(input string) string {
	ext := filepath.Ext(input)
	return input[0:len(input)-len(ext)] + ".fbx"
}

func splitList(s string) []string {
	var r []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			r = append(r, v)
		}
	}
	return r
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] shape.yaml [anim.yaml ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	output := flag.String("o", "", "output file (.fbx, .glb, .gltf)")
	appendAnim := flag.Bool("append", false, "add animations to an existing .fbx")
	textures := flag.String("textures", "", "texture directories (comma separated)")
	scale := flag.Float64("scale", 0, "0: config or 100")
	collision := flag.String("collision", "", "collision object prefixes (comma separated)")
	confFile := flag.String("config", "", "config file (default: <input>.dtsconv.yaml)")
	embed := flag.Bool("embed", false, "embed textures (.gltf)")
	texLimit := flag.Int("texlimit", 0, "texture resolution limit (.glb, .gltf)")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	input := flag.Arg(0)
	if *output == "" {
		*output = defaultOutputFile(input)
	}
	if *confFile == "" {
		*confFile = defaultConfigFile(input)
	}
	conf, err := loadConfig(*confFile)
	if err != nil {
		log.Fatal(err)
	}

	if *textures != "" {
		conf.TextureDirs = splitList(*textures)
	}
	if len(conf.TextureDirs) == 0 {
		conf.TextureDirs = []string{filepath.Dir(input)}
	}
	if *scale != 0 {
		conf.Scale = float32(*scale)
	}
	if *collision != "" {
		conf.CollisionPrefixes = splitList(*collision)
	}
	if *embed {
		conf.GLTF.EmbedTextures = true
	}
	if *texLimit != 0 {
		conf.GLTF.TextureResolutionLimit = *texLimit
	}

	shape, err := dts.Load(input)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Shape: %s (%d nodes, %d objects, %d sequences)",
		shape.Name, len(shape.Nodes), len(shape.Objects), len(shape.Sequences))

	var anims []*dts.Shape
	for _, f := range append(conf.Animations, flag.Args()[1:]...) {
		a, err := dts.Load(f)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Animation: %s (%d sequences)", a.Name, len(a.Sequences))
		anims = append(anims, a)
	}

	conv := converter.NewDTSToFBXConverter(&converter.DTSToFBXOption{
		Scale:             conf.Scale,
		CollisionPrefixes: conf.CollisionPrefixes,
		Textures:          texture.NewIndex(conf.TextureDirs...),
	})
	store := converter.StoreForPath(*output, &converter.FBXToGLTFOption{
		EmbedTextures:          conf.GLTF.EmbedTextures,
		TextureResolutionLimit: conf.GLTF.TextureResolutionLimit,
	})
	if err := conv.Export(store, shape, anims, *output, *appendAnim); err != nil {
		log.Fatal(err)
	}
}
