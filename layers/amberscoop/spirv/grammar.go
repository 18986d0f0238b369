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

package spirv

import (
	naga "github.com/gogpu/naga/spirv"
)

type operandKind int

const (
	kindID operandKind = iota
	kindLiteral
	kindString
	kindValue // literal whose type is the instruction's result type
	kindCapability
	kindAddressing
	kindMemoryModel
	kindExecutionModel
	kindExecutionMode
	kindStorageClass
	kindDecoration
	kindBuiltIn
	kindSourceLanguage
	kindDim
	kindFunctionControl
	kindSelectionControl
	kindLoopControl
	kindMemoryAccess
	kindImageOperands
	kindImageFormat
	kindSwitchTarget // alternating literal and label id
)

type instruction struct {
	name     string
	typed    bool // first operand is the result type
	result   bool // next operand is the result id
	operands []operandKind
	rest     operandKind
}

// Opcodes not named by naga.
const (
	opUndef                  naga.OpCode = 1
	opSourceExtension        naga.OpCode = 4
	opString                 naga.OpCode = 7
	opExtension              naga.OpCode = 10
	opExtInst                naga.OpCode = 12
	opTypeImage              naga.OpCode = 25
	opTypeSampler            naga.OpCode = 26
	opTypeSampledImage       naga.OpCode = 27
	opTypeRuntimeArray       naga.OpCode = 29
	opConstantTrue           naga.OpCode = 41
	opConstantFalse          naga.OpCode = 42
	opConstantNull           naga.OpCode = 46
	opFunctionCall           naga.OpCode = 57
	opVectorShuffle          naga.OpCode = 79
	opCompositeConstruct     naga.OpCode = 80
	opCompositeExtract       naga.OpCode = 81
	opCompositeInsert        naga.OpCode = 82
	opCopyObject             naga.OpCode = 83
	opSampledImage           naga.OpCode = 86
	opImageSampleImplicitLod naga.OpCode = 87
	opImageSampleExplicitLod naga.OpCode = 88
	opPhi                    naga.OpCode = 245
	opLoopMerge              naga.OpCode = 246
	opSelectionMerge         naga.OpCode = 247
	opBranchConditional      naga.OpCode = 250
	opSwitch                 naga.OpCode = 251
	opKill                   naga.OpCode = 252
	opUnreachable            naga.OpCode = 255
)

var instructions = map[naga.OpCode]instruction{
	naga.OpNop:           {name: "OpNop"},
	opUndef:              {name: "OpUndef", typed: true, result: true},
	naga.OpSource:        {name: "OpSource", operands: []operandKind{kindSourceLanguage, kindLiteral, kindID, kindString}},
	opSourceExtension:    {name: "OpSourceExtension", operands: []operandKind{kindString}},
	naga.OpName:          {name: "OpName", operands: []operandKind{kindID, kindString}},
	naga.OpMemberName:    {name: "OpMemberName", operands: []operandKind{kindID, kindLiteral, kindString}},
	opString:             {name: "OpString", result: true, operands: []operandKind{kindString}},
	opExtension:          {name: "OpExtension", operands: []operandKind{kindString}},
	naga.OpExtInstImport: {name: "OpExtInstImport", result: true, operands: []operandKind{kindString}},
	opExtInst:            {name: "OpExtInst", typed: true, result: true, operands: []operandKind{kindID, kindLiteral}},
	naga.OpMemoryModel:   {name: "OpMemoryModel", operands: []operandKind{kindAddressing, kindMemoryModel}},
	naga.OpEntryPoint:    {name: "OpEntryPoint", operands: []operandKind{kindExecutionModel, kindID, kindString}},
	naga.OpExecutionMode: {name: "OpExecutionMode", operands: []operandKind{kindID, kindExecutionMode}, rest: kindLiteral},
	naga.OpCapability:    {name: "OpCapability", operands: []operandKind{kindCapability}},
	naga.OpTypeVoid:      {name: "OpTypeVoid", result: true},
	naga.OpTypeBool:      {name: "OpTypeBool", result: true},
	naga.OpTypeInt:       {name: "OpTypeInt", result: true, rest: kindLiteral},
	naga.OpTypeFloat:     {name: "OpTypeFloat", result: true, rest: kindLiteral},
	naga.OpTypeVector:    {name: "OpTypeVector", result: true, operands: []operandKind{kindID}, rest: kindLiteral},
	naga.OpTypeMatrix:    {name: "OpTypeMatrix", result: true, operands: []operandKind{kindID}, rest: kindLiteral},
	opTypeImage: {name: "OpTypeImage", result: true, operands: []operandKind{
		kindID, kindDim, kindLiteral, kindLiteral, kindLiteral, kindLiteral, kindImageFormat,
	}, rest: kindLiteral},
	opTypeSampler:            {name: "OpTypeSampler", result: true},
	opTypeSampledImage:       {name: "OpTypeSampledImage", result: true},
	naga.OpTypeArray:         {name: "OpTypeArray", result: true},
	opTypeRuntimeArray:       {name: "OpTypeRuntimeArray", result: true},
	naga.OpTypeStruct:        {name: "OpTypeStruct", result: true},
	naga.OpTypePointer:       {name: "OpTypePointer", result: true, operands: []operandKind{kindStorageClass}},
	naga.OpTypeFunction:      {name: "OpTypeFunction", result: true},
	opConstantTrue:           {name: "OpConstantTrue", typed: true, result: true},
	opConstantFalse:          {name: "OpConstantFalse", typed: true, result: true},
	naga.OpConstant:          {name: "OpConstant", typed: true, result: true, operands: []operandKind{kindValue}},
	naga.OpConstantComposite: {name: "OpConstantComposite", typed: true, result: true},
	opConstantNull:           {name: "OpConstantNull", typed: true, result: true},
	naga.OpFunction:          {name: "OpFunction", typed: true, result: true, operands: []operandKind{kindFunctionControl}},
	naga.OpFunctionParameter: {name: "OpFunctionParameter", typed: true, result: true},
	naga.OpFunctionEnd:       {name: "OpFunctionEnd"},
	opFunctionCall:           {name: "OpFunctionCall", typed: true, result: true},
	naga.OpVariable:          {name: "OpVariable", typed: true, result: true, operands: []operandKind{kindStorageClass}},
	naga.OpLoad:              {name: "OpLoad", typed: true, result: true, operands: []operandKind{kindID, kindMemoryAccess}, rest: kindLiteral},
	naga.OpStore:             {name: "OpStore", operands: []operandKind{kindID, kindID, kindMemoryAccess}, rest: kindLiteral},
	naga.OpAccessChain:       {name: "OpAccessChain", typed: true, result: true},
	naga.OpDecorate:          {name: "OpDecorate", operands: []operandKind{kindID, kindDecoration}, rest: kindLiteral},
	naga.OpMemberDecorate:    {name: "OpMemberDecorate", operands: []operandKind{kindID, kindLiteral, kindDecoration}, rest: kindLiteral},
	opVectorShuffle:          {name: "OpVectorShuffle", typed: true, result: true, operands: []operandKind{kindID, kindID}, rest: kindLiteral},
	opCompositeConstruct:     {name: "OpCompositeConstruct", typed: true, result: true},
	opCompositeExtract:       {name: "OpCompositeExtract", typed: true, result: true, operands: []operandKind{kindID}, rest: kindLiteral},
	opCompositeInsert:        {name: "OpCompositeInsert", typed: true, result: true, operands: []operandKind{kindID, kindID}, rest: kindLiteral},
	opCopyObject:             {name: "OpCopyObject", typed: true, result: true},
	opSampledImage:           {name: "OpSampledImage", typed: true, result: true},
	opImageSampleImplicitLod: {name: "OpImageSampleImplicitLod", typed: true, result: true, operands: []operandKind{kindID, kindID, kindImageOperands}},
	opImageSampleExplicitLod: {name: "OpImageSampleExplicitLod", typed: true, result: true, operands: []operandKind{kindID, kindID, kindImageOperands}},
	opPhi:                    {name: "OpPhi", typed: true, result: true},
	opLoopMerge:              {name: "OpLoopMerge", operands: []operandKind{kindID, kindID, kindLoopControl}, rest: kindLiteral},
	opSelectionMerge:         {name: "OpSelectionMerge", operands: []operandKind{kindID, kindSelectionControl}},
	naga.OpLabel:             {name: "OpLabel", result: true},
	naga.OpBranch:            {name: "OpBranch"},
	opBranchConditional:      {name: "OpBranchConditional", operands: []operandKind{kindID, kindID, kindID}, rest: kindLiteral},
	opSwitch:                 {name: "OpSwitch", operands: []operandKind{kindID, kindID}, rest: kindSwitchTarget},
	opKill:                   {name: "OpKill"},
	naga.OpReturn:            {name: "OpReturn"},
	naga.OpReturnValue:       {name: "OpReturnValue"},
	opUnreachable:            {name: "OpUnreachable"},
}

// Arithmetic, conversion and comparison instructions all have a result type,
// a result id and id operands.
var valueInstructions = map[naga.OpCode]string{
	109: "OpConvertFToU", 110: "OpConvertFToS", 111: "OpConvertSToF",
	112: "OpConvertUToF", 124: "OpBitcast", 126: "OpSNegate",
	127: "OpFNegate", 128: "OpIAdd", 129: "OpFAdd", 130: "OpISub",
	131: "OpFSub", 132: "OpIMul", 133: "OpFMul", 134: "OpUDiv",
	135: "OpSDiv", 136: "OpFDiv", 137: "OpUMod", 138: "OpSRem",
	139: "OpSMod", 140: "OpFRem", 141: "OpFMod", 142: "OpVectorTimesScalar",
	143: "OpMatrixTimesScalar", 144: "OpVectorTimesMatrix",
	145: "OpMatrixTimesVector", 146: "OpMatrixTimesMatrix", 148: "OpDot",
	164: "OpLogicalEqual", 165: "OpLogicalNotEqual", 166: "OpLogicalOr",
	167: "OpLogicalAnd", 168: "OpLogicalNot", 169: "OpSelect",
	170: "OpIEqual", 171: "OpINotEqual", 172: "OpUGreaterThan",
	173: "OpSGreaterThan", 174: "OpUGreaterThanEqual",
	175: "OpSGreaterThanEqual", 176: "OpULessThan", 177: "OpSLessThan",
	178: "OpULessThanEqual", 179: "OpSLessThanEqual", 180: "OpFOrdEqual",
	182: "OpFOrdNotEqual", 184: "OpFOrdLessThan", 186: "OpFOrdGreaterThan",
	188: "OpFOrdLessThanEqual", 190: "OpFOrdGreaterThanEqual",
	194: "OpShiftRightLogical", 195: "OpShiftRightArithmetic",
	196: "OpShiftLeftLogical", 197: "OpBitwiseOr", 198: "OpBitwiseXor",
	199: "OpBitwiseAnd", 200: "OpNot",
}

func lookupInstruction(op naga.OpCode) (instruction, bool) {
	if i, ok := instructions[op]; ok {
		return i, true
	}
	if name, ok := valueInstructions[op]; ok {
		return instruction{name: name, typed: true, result: true}, true
	}
	return instruction{}, false
}

var enumNames = map[operandKind]map[uint32]string{
	kindCapability: {
		0: "Matrix", 1: "Shader", 2: "Geometry", 3: "Tessellation",
		4: "Addresses", 5: "Linkage", 6: "Kernel", 9: "Float16",
		10: "Float64", 11: "Int64", 22: "Int16", 32: "ImageQuery",
		39: "Int8", 50: "SampledBuffer", 56: "StorageImageExtendedFormats",
	},
	kindAddressing:     {0: "Logical", 1: "Physical32", 2: "Physical64", 5348: "PhysicalStorageBuffer64"},
	kindMemoryModel:    {0: "Simple", 1: "GLSL450", 2: "OpenCL", 3: "Vulkan"},
	kindExecutionModel: {0: "Vertex", 1: "TessellationControl", 2: "TessellationEvaluation", 3: "Geometry", 4: "Fragment", 5: "GLCompute"},
	kindExecutionMode: {
		7: "OriginUpperLeft", 8: "OriginLowerLeft", 9: "EarlyFragmentTests",
		12: "DepthReplacing", 17: "LocalSize",
	},
	kindStorageClass: {
		0: "UniformConstant", 1: "Input", 2: "Uniform", 3: "Output",
		4: "Workgroup", 6: "Private", 7: "Function", 9: "PushConstant",
		11: "Image", 12: "StorageBuffer",
	},
	kindDecoration: {
		0: "RelaxedPrecision", 1: "SpecId",
		uint32(naga.DecorationBlock):         "Block",
		3:                                    "BufferBlock",
		uint32(naga.DecorationRowMajor):      "RowMajor",
		uint32(naga.DecorationColMajor):      "ColMajor",
		uint32(naga.DecorationArrayStride):   "ArrayStride",
		uint32(naga.DecorationMatrixStride):  "MatrixStride",
		uint32(naga.DecorationBuiltIn):       "BuiltIn",
		14:                                   "Flat",
		18:                                   "NonWritable",
		24:                                   "NonReadable",
		uint32(naga.DecorationLocation):      "Location",
		31:                                   "Component",
		uint32(naga.DecorationBinding):       "Binding",
		uint32(naga.DecorationDescriptorSet): "DescriptorSet",
		uint32(naga.DecorationOffset):        "Offset",
	},
	kindBuiltIn: {
		0: "Position", 1: "PointSize", 3: "ClipDistance", 4: "CullDistance",
		15: "FragCoord", 17: "FrontFacing", 22: "FragDepth",
		42: "VertexIndex", 43: "InstanceIndex",
	},
	kindSourceLanguage: {0: "Unknown", 1: "ESSL", 2: "GLSL", 3: "OpenCL_C", 4: "OpenCL_CPP", 5: "HLSL"},
	kindImageFormat:    {0: "Unknown", 1: "Rgba32f", 2: "Rgba16f", 3: "R32f", 4: "Rgba8", 21: "Rgba32i", 30: "Rgba32ui"},
	kindDim:            {0: "1D", 1: "2D", 2: "3D", 3: "Cube", 4: "Rect", 5: "Buffer", 6: "SubpassData"},
}

var maskNames = map[operandKind][]string{
	kindFunctionControl:  {"Inline", "DontInline", "Pure", "Const"},
	kindSelectionControl: {"Flatten", "DontFlatten"},
	kindLoopControl:      {"Unroll", "DontUnroll", "DependencyInfinite", "DependencyLength"},
	kindMemoryAccess:     {"Volatile", "Aligned", "Nontemporal"},
	kindImageOperands:    {"Bias", "Lod", "Grad", "ConstOffset", "Offset", "ConstOffsets", "Sample", "MinLod"},
}
