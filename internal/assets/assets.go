// Package assets loads and caches raylib models, animations and textures.
// All loading needs an open window.
package assets

import (
	"errors"
	"fmt"
	"os"

	"floatme/internal/config"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrMissingAsset = errors.New("assets: missing asset")

type Manager struct {
	models     map[string]rl.Model
	animations map[string][]rl.ModelAnimation
	textures   map[string]rl.Texture2D
	generated  []rl.Model
}

func NewManager() *Manager {
	return &Manager{
		models:     make(map[string]rl.Model),
		animations: make(map[string][]rl.ModelAnimation),
		textures:   make(map[string]rl.Texture2D),
	}
}

// CheckFiles reports the first path that does not exist as ErrMissingAsset.
func CheckFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%s: %w (%v)", path, ErrMissingAsset, err)
		}
	}
	return nil
}

func (m *Manager) LoadModel(path string) (rl.Model, error) {
	if model, exists := m.models[path]; exists {
		return model, nil
	}
	if err := CheckFiles(path); err != nil {
		return rl.Model{}, err
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("%s: no meshes: %w", path, ErrMissingAsset)
	}
	m.models[path] = model
	log.Debug("assets: model loaded", "path", path, "meshes", model.MeshCount, "bones", model.BoneCount)
	return model, nil
}

func (m *Manager) LoadAnimations(path string) ([]rl.ModelAnimation, error) {
	if clips, exists := m.animations[path]; exists {
		return clips, nil
	}
	if err := CheckFiles(path); err != nil {
		return nil, err
	}

	clips := rl.LoadModelAnimations(path)
	if len(clips) == 0 {
		return nil, fmt.Errorf("%s: no animations: %w", path, ErrMissingAsset)
	}
	m.animations[path] = clips
	log.Debug("assets: animations loaded", "path", path, "clips", len(clips))
	return clips, nil
}

func (m *Manager) LoadTexture(path string) (rl.Texture2D, error) {
	if texture, exists := m.textures[path]; exists {
		return texture, nil
	}
	if err := CheckFiles(path); err != nil {
		return rl.Texture2D{}, err
	}

	texture := rl.LoadTexture(path)
	if texture.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%s: not a texture: %w", path, ErrMissingAsset)
	}
	rl.SetTextureWrap(texture, rl.WrapRepeat)
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	m.textures[path] = texture
	return texture, nil
}

// TexturedCube returns a unit cube model using texture as its diffuse map.
// The model is owned by the manager.
func (m *Manager) TexturedCube(texture rl.Texture2D) rl.Model {
	model := rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
	m.generated = append(m.generated, model)
	return model
}

func (m *Manager) Unload() {
	for path, clips := range m.animations {
		rl.UnloadModelAnimations(clips)
		delete(m.animations, path)
	}
	for path, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, path)
	}
	// UnloadModel leaves material textures alone; the cache frees them below.
	for _, model := range m.generated {
		rl.UnloadModel(model)
	}
	m.generated = nil
	for path, texture := range m.textures {
		rl.UnloadTexture(texture)
		delete(m.textures, path)
	}
}

// GameAssets is everything the Playing state needs.
type GameAssets struct {
	Gun        rl.Model
	Enemy      rl.Model
	EnemyClips []rl.ModelAnimation
	Tiles      rl.Texture2D
	Block      rl.Model
}

// LoadGameAssets loads every asset named in cfg. Any missing asset fails.
func LoadGameAssets(m *Manager, cfg config.AssetsConfig) (*GameAssets, error) {
	if err := CheckFiles(cfg.Gun, cfg.Enemy, cfg.Tiles); err != nil {
		return nil, err
	}

	ga := &GameAssets{}
	var err error
	if ga.Gun, err = m.LoadModel(cfg.Gun); err != nil {
		return nil, err
	}
	if ga.Enemy, err = m.LoadModel(cfg.Enemy); err != nil {
		return nil, err
	}
	if ga.EnemyClips, err = m.LoadAnimations(cfg.Enemy); err != nil {
		return nil, err
	}
	if ga.Tiles, err = m.LoadTexture(cfg.Tiles); err != nil {
		return nil, err
	}
	ga.Block = m.TexturedCube(ga.Tiles)

	log.Info("assets: loaded", "gun", cfg.Gun, "enemy", cfg.Enemy, "clips", len(ga.EnemyClips))
	return ga, nil
}
