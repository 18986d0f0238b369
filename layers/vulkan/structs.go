// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vulkan

// The create-info mirrors below own their arrays as slices. Clone returns a
// copy that shares no memory with the receiver, so a recorded value is never
// affected by the caller reusing its arrays after the call returns.

type VkBufferCreateInfo struct {
	Flags              uint32
	Size               VkDeviceSize
	Usage              VkBufferUsageFlags
	SharingMode        uint32
	QueueFamilyIndices []uint32
}

func (i VkBufferCreateInfo) Clone() VkBufferCreateInfo {
	i.QueueFamilyIndices = cloneSlice(i.QueueFamilyIndices)
	return i
}

type VkMemoryAllocateInfo struct {
	AllocationSize  VkDeviceSize
	MemoryTypeIndex uint32
}

type VkDescriptorSetLayoutBinding struct {
	Binding           uint32
	DescriptorType    VkDescriptorType
	DescriptorCount   uint32
	StageFlags        VkShaderStageFlags
	ImmutableSamplers []VkSampler
}

func (b VkDescriptorSetLayoutBinding) Clone() VkDescriptorSetLayoutBinding {
	b.ImmutableSamplers = cloneSlice(b.ImmutableSamplers)
	return b
}

type VkDescriptorSetLayoutCreateInfo struct {
	Flags    uint32
	Bindings []VkDescriptorSetLayoutBinding
}

func (i VkDescriptorSetLayoutCreateInfo) Clone() VkDescriptorSetLayoutCreateInfo {
	i.Bindings = cloneEach(i.Bindings, VkDescriptorSetLayoutBinding.Clone)
	return i
}

// Binding returns the layout entry with the given binding number.
func (i VkDescriptorSetLayoutCreateInfo) Binding(binding uint32) (VkDescriptorSetLayoutBinding, bool) {
	for _, b := range i.Bindings {
		if b.Binding == binding {
			return b, true
		}
	}
	return VkDescriptorSetLayoutBinding{}, false
}

type VkDescriptorSetAllocateInfo struct {
	DescriptorPool VkDescriptorPool
	SetLayouts     []VkDescriptorSetLayout
}

func (i VkDescriptorSetAllocateInfo) Clone() VkDescriptorSetAllocateInfo {
	i.SetLayouts = cloneSlice(i.SetLayouts)
	return i
}

type VkDescriptorBufferInfo struct {
	Buffer VkBuffer
	Offset VkDeviceSize
	Range  VkDeviceSize
}

type VkDescriptorImageInfo struct {
	Sampler     VkSampler
	ImageView   VkImageView
	ImageLayout uint32
}

type VkWriteDescriptorSet struct {
	DstSet          VkDescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
	DescriptorType  VkDescriptorType
	ImageInfo       []VkDescriptorImageInfo
	BufferInfo      []VkDescriptorBufferInfo
	TexelBufferView []VkBufferView
}

func (w VkWriteDescriptorSet) Clone() VkWriteDescriptorSet {
	w.ImageInfo = cloneSlice(w.ImageInfo)
	w.BufferInfo = cloneSlice(w.BufferInfo)
	w.TexelBufferView = cloneSlice(w.TexelBufferView)
	return w
}

type VkCopyDescriptorSet struct {
	SrcSet          VkDescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          VkDescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

type VkFramebufferCreateInfo struct {
	Flags       uint32
	RenderPass  VkRenderPass
	Attachments []VkImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

func (i VkFramebufferCreateInfo) Clone() VkFramebufferCreateInfo {
	i.Attachments = cloneSlice(i.Attachments)
	return i
}

type VkPipelineShaderStageCreateInfo struct {
	Stage  VkShaderStageFlagBits
	Module VkShaderModule
	Name   string
}

type VkVertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VkVertexInputRate
}

type VkVertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   VkFormat
	Offset   uint32
}

type VkPipelineVertexInputStateCreateInfo struct {
	VertexBindingDescriptions   []VkVertexInputBindingDescription
	VertexAttributeDescriptions []VkVertexInputAttributeDescription
}

func (i *VkPipelineVertexInputStateCreateInfo) Clone() *VkPipelineVertexInputStateCreateInfo {
	if i == nil {
		return nil
	}
	return &VkPipelineVertexInputStateCreateInfo{
		VertexBindingDescriptions:   cloneSlice(i.VertexBindingDescriptions),
		VertexAttributeDescriptions: cloneSlice(i.VertexAttributeDescriptions),
	}
}

// Binding returns the description of the given vertex binding.
func (i *VkPipelineVertexInputStateCreateInfo) Binding(binding uint32) (VkVertexInputBindingDescription, bool) {
	if i != nil {
		for _, d := range i.VertexBindingDescriptions {
			if d.Binding == binding {
				return d, true
			}
		}
	}
	return VkVertexInputBindingDescription{}, false
}

type VkPipelineInputAssemblyStateCreateInfo struct {
	Topology               VkPrimitiveTopology
	PrimitiveRestartEnable VkBool32
}

type VkGraphicsPipelineCreateInfo struct {
	Flags              uint32
	Stages             []VkPipelineShaderStageCreateInfo
	VertexInputState   *VkPipelineVertexInputStateCreateInfo
	InputAssemblyState *VkPipelineInputAssemblyStateCreateInfo
	Layout             VkPipelineLayout
	RenderPass         VkRenderPass
	Subpass            uint32
	BasePipelineHandle VkPipeline
	BasePipelineIndex  int32
}

func (i VkGraphicsPipelineCreateInfo) Clone() VkGraphicsPipelineCreateInfo {
	i.Stages = cloneSlice(i.Stages)
	i.VertexInputState = i.VertexInputState.Clone()
	if i.InputAssemblyState != nil {
		ia := *i.InputAssemblyState
		i.InputAssemblyState = &ia
	}
	return i
}

type VkPushConstantRange struct {
	StageFlags VkShaderStageFlags
	Offset     uint32
	Size       uint32
}

type VkPipelineLayoutCreateInfo struct {
	Flags              uint32
	SetLayouts         []VkDescriptorSetLayout
	PushConstantRanges []VkPushConstantRange
}

func (i VkPipelineLayoutCreateInfo) Clone() VkPipelineLayoutCreateInfo {
	i.SetLayouts = cloneSlice(i.SetLayouts)
	i.PushConstantRanges = cloneSlice(i.PushConstantRanges)
	return i
}

type VkAttachmentDescription struct {
	Flags          uint32
	Format         VkFormat
	Samples        uint32
	LoadOp         uint32
	StoreOp        uint32
	StencilLoadOp  uint32
	StencilStoreOp uint32
	InitialLayout  uint32
	FinalLayout    uint32
}

type VkAttachmentReference struct {
	Attachment uint32
	Layout     uint32
}

// VK_ATTACHMENT_UNUSED marks an attachment reference slot as unused.
const VK_ATTACHMENT_UNUSED = ^uint32(0)

type VkSubpassDescription struct {
	Flags                  uint32
	PipelineBindPoint      VkPipelineBindPoint
	InputAttachments       []VkAttachmentReference
	ColorAttachments       []VkAttachmentReference
	ResolveAttachments     []VkAttachmentReference
	DepthStencilAttachment *VkAttachmentReference
	PreserveAttachments    []uint32
}

func (d VkSubpassDescription) Clone() VkSubpassDescription {
	d.InputAttachments = cloneSlice(d.InputAttachments)
	d.ColorAttachments = cloneSlice(d.ColorAttachments)
	d.ResolveAttachments = cloneSlice(d.ResolveAttachments)
	if d.DepthStencilAttachment != nil {
		ds := *d.DepthStencilAttachment
		d.DepthStencilAttachment = &ds
	}
	d.PreserveAttachments = cloneSlice(d.PreserveAttachments)
	return d
}

type VkSubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    uint32
	DstStageMask    uint32
	SrcAccessMask   uint32
	DstAccessMask   uint32
	DependencyFlags uint32
}

type VkRenderPassCreateInfo struct {
	Flags        uint32
	Attachments  []VkAttachmentDescription
	Subpasses    []VkSubpassDescription
	Dependencies []VkSubpassDependency
}

func (i VkRenderPassCreateInfo) Clone() VkRenderPassCreateInfo {
	i.Attachments = cloneSlice(i.Attachments)
	i.Subpasses = cloneEach(i.Subpasses, VkSubpassDescription.Clone)
	i.Dependencies = cloneSlice(i.Dependencies)
	return i
}

type VkShaderModuleCreateInfo struct {
	Flags uint32
	Code  []uint32
}

func (i VkShaderModuleCreateInfo) Clone() VkShaderModuleCreateInfo {
	i.Code = cloneSlice(i.Code)
	return i
}

type VkOffset2D struct{ X, Y int32 }

type VkExtent2D struct{ Width, Height uint32 }

type VkRect2D struct {
	Offset VkOffset2D
	Extent VkExtent2D
}

// VkClearValue holds either a color or a depth/stencil clear value.
type VkClearValue struct {
	Color   [4]float32
	Depth   float32
	Stencil uint32
}

type VkRenderPassBeginInfo struct {
	RenderPass  VkRenderPass
	Framebuffer VkFramebuffer
	RenderArea  VkRect2D
	ClearValues []VkClearValue
}

func (i VkRenderPassBeginInfo) Clone() VkRenderPassBeginInfo {
	i.ClearValues = cloneSlice(i.ClearValues)
	return i
}

type VkBufferCopy struct {
	SrcOffset VkDeviceSize
	DstOffset VkDeviceSize
	Size      VkDeviceSize
}

type VkSubmitInfo struct {
	WaitSemaphores   []VkSemaphore
	CommandBuffers   []VkCommandBuffer
	SignalSemaphores []VkSemaphore
}

func (i VkSubmitInfo) Clone() VkSubmitInfo {
	i.WaitSemaphores = cloneSlice(i.WaitSemaphores)
	i.CommandBuffers = cloneSlice(i.CommandBuffers)
	i.SignalSemaphores = cloneSlice(i.SignalSemaphores)
	return i
}

type VkCommandBufferAllocateInfo struct {
	CommandPool        VkCommandPool
	Level              VkCommandBufferLevel
	CommandBufferCount uint32
}

type VkCommandBufferBeginInfo struct {
	Flags uint32
}

// cloneSlice copies a slice of plain values, keeping nil as nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func cloneEach[T any](s []T, clone func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = clone(v)
	}
	return out
}
